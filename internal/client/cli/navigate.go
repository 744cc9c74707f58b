package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TermNavigator is the terminal stand-in for page navigation. Paths
// within the application are recorded as the current surface; absolute
// URLs are a full hand-off out of the application and are printed for
// the user to follow in a browser.
type TermNavigator struct {
	w io.Writer

	mu      sync.Mutex
	current string
}

func NewTermNavigator(w io.Writer) *TermNavigator {
	return &TermNavigator{w: w}
}

func (n *TermNavigator) GoTo(path string) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		fmt.Fprintf(n.w, "Continue in your browser: %s\n", path)
		return
	}

	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
}

// Current returns the surface the navigator last moved to.
func (n *TermNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
