package cli

import (
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer is the line-oriented output channel used for help, version, and anything a [Command] wants to tell the user.
// It writes to STDERR unless redirected.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

// Writer returns the current output destination.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

func (p *Printer) fd() (int, bool) {
	f, ok := p.out.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal reports whether output is going to a terminal.
func (p *Printer) IsTerminal() bool {
	fd, ok := p.fd()
	return ok && term.IsTerminal(fd)
}

// Width returns the column width of the terminal receiving output, or 0 if it's not a terminal.
func (p *Printer) Width() int {
	if !p.IsTerminal() {
		return 0
	}
	fd, _ := p.fd()
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
