package main

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const sample = "Aa 示例"

var palette = []struct {
	name string
	code int
}{
	{"black", 30},
	{"red", 31},
	{"green", 32},
	{"yellow", 33},
	{"blue", 34},
	{"magenta", 35},
	{"cyan", 36},
	{"white", 37},
}

var paletteHeader = [3]string{"COLOR", "SGR", "SAMPLE"}

func colorCode(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range palette {
		if c.name == name {
			return c.code, true
		}
	}
	return 0, false
}

// renderPalette draws one row per palette colour. Column widths come from
// the plain text; the sample cell is painted after padding.
func renderPalette(color bool) string {
	var w [3]int
	for i, h := range paletteHeader {
		w[i] = runewidth.StringWidth(h)
	}
	w[2] = max(w[2], runewidth.StringWidth(sample))
	for _, c := range palette {
		w[0] = max(w[0], runewidth.StringWidth(c.name))
		w[1] = max(w[1], len(strconv.Itoa(c.code)))
	}

	rule := "+"
	for _, n := range w {
		rule += strings.Repeat("-", n+2) + "+"
	}
	rule += "\n"

	var b strings.Builder
	b.WriteString(rule)
	writeRow(&b, w, paletteHeader)
	b.WriteString(rule)
	for _, c := range palette {
		row := [3]string{
			runewidth.FillRight(c.name, w[0]),
			runewidth.FillRight(strconv.Itoa(c.code), w[1]),
			paint(runewidth.FillRight(sample, w[2]), c.code, color),
		}
		writeRow(&b, [3]int{}, row)
	}
	b.WriteString(rule)
	return b.String()
}

// writeRow pads cells to w; a zero width leaves the cell untouched.
func writeRow(b *strings.Builder, w [3]int, cells [3]string) {
	b.WriteString("|")
	for i, cell := range cells {
		if w[i] > 0 {
			cell = runewidth.FillRight(cell, w[i])
		}
		b.WriteString(" " + cell + " |")
	}
	b.WriteString("\n")
}
