package components

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/allbin/excserial"
)

// clearWidth is how many columns are blanked before each status line
const clearWidth = 120

// StatusLine prints the running message count on a single console line,
// overwriting the previous value in place.
type StatusLine struct {
	mu      sync.Mutex
	w       io.Writer
	printed bool
}

var _ excserial.Reporter = (*StatusLine)(nil)

func NewStatusLine(w io.Writer) *StatusLine {
	return &StatusLine{w: w}
}

// Report overwrites the line with the current count
func (s *StatusLine) Report(p excserial.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "\r%s\rMessages sent: %d", strings.Repeat(" ", clearWidth), p.Sent)
	s.printed = true
}

// Finish ends the status line so following output starts on a fresh line.
// It does nothing if no status was ever printed.
func (s *StatusLine) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.printed {
		fmt.Fprintln(s.w)
		s.printed = false
	}
}
