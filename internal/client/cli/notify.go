// Package cli hosts the terminal surface of accountkeeper: the REPL,
// the interactive prompts, and the terminal implementations of the
// Notifier and Navigator collaborators consumed by the session layer.
package cli

import (
	"fmt"
	"io"
)

// TermNotifier writes one-line user-facing notifications to w.
type TermNotifier struct {
	w io.Writer
}

func NewTermNotifier(w io.Writer) *TermNotifier {
	return &TermNotifier{w: w}
}

func (n *TermNotifier) Success(msg string) {
	fmt.Fprintf(n.w, "[ok] %s\n", msg)
}

func (n *TermNotifier) Warning(msg string) {
	fmt.Fprintf(n.w, "[warn] %s\n", msg)
}

func (n *TermNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "[error] %s\n", msg)
}
