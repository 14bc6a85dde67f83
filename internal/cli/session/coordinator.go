// Package session performs the navigation effect that an Unauthorized failure asks for.
// The request façade only reports where to go; the Coordinator goes there.
package session

import (
	"fmt"
	"io"
	"sync"

	"HBnB/internal/cli/api"

	"go.uber.org/zap"
)

// Navigator moves the user to a surface.
type Navigator interface {
	Navigate(to api.Surface)
}

// Coordinator tracks the current surface and applies redirects.
type Coordinator struct {
	mu      sync.Mutex
	current api.Surface
	nav     Navigator
	log     *zap.SugaredLogger
}

// New creates a coordinator starting on the given surface.
func New(start api.Surface, nav Navigator, log *zap.SugaredLogger) *Coordinator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Coordinator{current: start, nav: nav, log: log}
}

// Surface returns the surface the user is on.
func (c *Coordinator) Surface() api.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Go navigates unconditionally.
func (c *Coordinator) Go(to api.Surface) {
	c.mu.Lock()
	c.current = to
	c.mu.Unlock()
	if c.nav != nil {
		c.nav.Navigate(to)
	}
}

// Handle applies the redirect carried by err, if any, and returns err unchanged.
func (c *Coordinator) Handle(err error) error {
	to, ok := api.RedirectOf(err)
	if !ok {
		return err
	}
	if c.Surface() == to {
		return err
	}
	c.log.Infow("session: redirecting", "to", string(to))
	c.Go(to)
	return err
}

// PrintNavigator is the CLI navigator: it tells the user what to run next.
type PrintNavigator struct {
	Out io.Writer
}

func (p PrintNavigator) Navigate(to api.Surface) {
	if p.Out == nil {
		return
	}
	switch to {
	case api.SurfaceLogin:
		fmt.Fprintln(p.Out, "Please log in: hbnb login <email> <password>")
	case api.SurfaceIndex:
		fmt.Fprintln(p.Out, "Try: hbnb places")
	}
}
