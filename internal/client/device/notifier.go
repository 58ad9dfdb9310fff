package device

import (
	"context"
	"fmt"
	"io"
)

// ConsoleNotifier prints alerts as standalone lines.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Alert(_ context.Context, msg string) {
	fmt.Fprintf(n.w, "[!] %s\n", msg)
}
