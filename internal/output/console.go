package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Console prints the answer text, one line per answer.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole writes to w, or stdout when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func (c *Console) Name() string { return "console" }

func (c *Console) Publish(_ context.Context, env *Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.w, env.Speech.Text)
	return err
}

func (c *Console) Close() error { return nil }
