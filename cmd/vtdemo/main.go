package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"

	"vtmode/internal/vt"
)

func main() {
	cfg := Config{}

	flag.StringVar(&cfg.Text, "text", "ok", "text to print in colour")
	flag.StringVar(&cfg.Color, "color", "red", "foreground colour (black, red, green, yellow, blue, magenta, cyan, white)")
	flag.BoolVar(&cfg.Table, "table", true, "print a sample table of all colours")
	flag.BoolVar(&cfg.Force, "force", false, "emit ANSI sequences even when stdout is not a terminal")
	flag.BoolVar(&cfg.Status, "status", false, "report whether virtual terminal processing is on, then exit")
	flag.Parse()

	if cfg.Status {
		log.Printf("virtual terminal processing: %s", onOff(vt.Enabled()))
		return
	}

	code, ok := colorCode(cfg.Color)
	if !ok {
		flag.Usage()
		log.Fatalf("unknown color %q", cfg.Color)
	}

	// once, before any ANSI output; failure only costs colours
	enabled := vt.Enable()
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if warnPlain(enabled, tty) {
		log.Printf("warning: virtual terminal processing not enabled, printing plain text")
	}

	ui := NewPrinter(os.Stdout, useColor(enabled, tty, cfg.Force))
	if err := Run(ui, cfg, code); err != nil {
		log.Fatalf("vtdemo: %v", err)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// warnPlain reports whether a failed enable is worth mentioning. Redirected
// output never has a console mode, so there is nothing lost there.
func warnPlain(enabled, tty bool) bool {
	return !enabled && tty
}

// useColor decides whether escape sequences go out at all.
func useColor(enabled, tty, force bool) bool {
	if force {
		return true
	}
	return enabled && tty
}

func Run(ui *Printer, cfg Config, code int) error {
	if err := ui.Line(cfg.Text, code); err != nil {
		return err
	}
	if cfg.Table {
		return ui.Draw(renderPalette(ui.color))
	}
	return nil
}
