package excserial

import "strconv"

// The ECU expects the same value four times per frame: "#v,v,v,v;"
const frameFields = 4

// maxFrameLen fits four 32-bit values with sign, separators and delimiters
const maxFrameLen = 2 + frameFields*11 + frameFields - 1

// AppendFrame appends the wire frame for v to dst and returns the extended buffer
func AppendFrame(dst []byte, v int) []byte {
	dst = append(dst, '#')
	for i := 0; i < frameFields; i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
	}
	return append(dst, ';')
}

// Frame returns the wire frame for v
func Frame(v int) []byte {
	return AppendFrame(make([]byte, 0, maxFrameLen), v)
}
