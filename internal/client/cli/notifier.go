package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// consoleNotifier prints operation outcomes to the user's terminal.
type consoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleNotifier(w io.Writer) *consoleNotifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Success(_ context.Context, title, msg string) {
	n.print("✓", title, msg)
}

func (n *consoleNotifier) Failure(_ context.Context, title, msg string) {
	n.print("!", title, msg)
}

func (n *consoleNotifier) print(mark, title, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "%s %s: %s\n", mark, title, msg)
}
