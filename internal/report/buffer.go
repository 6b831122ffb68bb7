package report

import (
	"fmt"
	"io"
	"strings"
)

// lineBuffer accumulates newline-terminated lines so a renderer can write
// its whole output, or fail, in one call.
type lineBuffer struct {
	sb strings.Builder
}

func (b *lineBuffer) printf(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteByte('\n')
}

func (b *lineBuffer) flush(w io.Writer) error {
	_, err := io.WriteString(w, b.sb.String())
	return err
}
