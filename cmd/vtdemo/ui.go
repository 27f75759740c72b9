package main

import (
	"bufio"
	"fmt"
	"io"
)

const reset = "\x1b[0m"

// Printer writes optionally coloured lines through a buffered writer.
type Printer struct {
	out   *bufio.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{out: bufio.NewWriter(w), color: color}
}

// Line prints text in the SGR foreground colour code, then resets.
func (p *Printer) Line(text string, code int) error {
	fmt.Fprintln(p.out, paint(text, code, p.color))
	return p.out.Flush()
}

// Draw block (multi-line) as is.
func (p *Printer) Draw(block string) error {
	fmt.Fprint(p.out, block)
	return p.out.Flush()
}

func paint(text string, code int, color bool) string {
	if !color || code == 0 {
		return text
	}
	return fmt.Sprintf("\x1b[%dm%s%s", code, text, reset)
}
