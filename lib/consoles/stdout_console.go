package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
)

type writerConsole struct {
	out      io.Writer
	verbose  bool
	prefixes []string
}

func NewStdOutConsole(verbose bool) Console {
	return NewConsole(os.Stdout, verbose)
}

// NewConsole writes to w, prefixing every line with the time and the current
// prefixes. Debugf output is dropped unless verbose is set.
func NewConsole(w io.Writer, verbose bool) Console {
	result := &writerConsole{verbose: verbose}
	result.out = lineprefix.New(lineprefix.Writer(w), lineprefix.PrefixFunc(result.prepare))
	return result
}

func (o *writerConsole) prepare() string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	return builder.String()
}

func (o *writerConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *writerConsole) Debugf(format string, a ...any) {
	if !o.verbose {
		return
	}

	o.Printf(format, a...)
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
