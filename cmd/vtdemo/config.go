package main

type Config struct {
	Text  string
	Color string

	// Print the sample table of all foreground colours.
	Table bool

	// Colour output even when stdout is not a terminal.
	Force bool

	// Only report whether stdout has VT processing on.
	Status bool
}
