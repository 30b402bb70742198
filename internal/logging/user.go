package logging

import (
	"fmt"
	"io"
	"os"
)

// Human-facing CLI output, kept apart from the structured debug log so
// that scripts parsing stderr records are never mixed with status lines.
// The R child's own output is untouched by any of this.

func userf(w io.Writer, glyph, format string, args ...interface{}) {
	fmt.Fprintf(w, glyph+" "+format+"\n", args...)
}

// UserInfo prints a progress line to stdout.
func UserInfo(format string, args ...interface{}) {
	userf(os.Stdout, "ℹ", format, args...)
}

// UserSuccess prints a completion line to stdout.
func UserSuccess(format string, args ...interface{}) {
	userf(os.Stdout, "✓", format, args...)
}

// UserWarning prints a warning line to stderr.
func UserWarning(format string, args ...interface{}) {
	userf(os.Stderr, "⚠", format, args...)
}

// UserError prints a failure line to stderr.
func UserError(format string, args ...interface{}) {
	userf(os.Stderr, "✗", format, args...)
}
