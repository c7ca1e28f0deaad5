package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/layoutrail/pkg/layout"
)

// stdinName is the input argument that selects stdin explicitly.
const stdinName = "-"

// runValidate reads the layout, validates it and writes each violation to
// the error stream. It returns ErrViolations when any rule was broken.
func (c *CLI) runValidate(ctx context.Context, input string) error {
	rs, err := c.loadRules()
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	spec, err := c.readSpec(ctx, input)
	if err != nil {
		return err
	}

	id, p := rs.Resolve(spec.FormatID)
	w, h := spec.Canvas(p)
	zone := p.SafeZone(w, h)
	c.Logger.Debug("Resolved profile", "format", id, "requested", spec.FormatID, "canvas", fmt.Sprintf("%gx%g", w, h))
	c.Logger.Debug("Safe zone", "top", zone.Top, "bottom", zone.Bottom, "left", zone.Left, "right", zone.Right)

	violations := rs.ValidateContext(withLogger(ctx, c.Logger), spec)

	for _, v := range violations {
		if _, err := fmt.Fprintln(c.Err, v); err != nil {
			return fmt.Errorf("write violation: %w", err)
		}
	}

	if len(violations) > 0 {
		return ErrViolations
	}
	return nil
}

// readSpec decodes the layout from the named file, or from stdin. Decoding
// runs in its own goroutine so that cancelling ctx returns immediately even
// while a read is blocked on a terminal or pipe.
func (c *CLI) readSpec(ctx context.Context, input string) (*layout.Spec, error) {
	prog := newProgress(c.Logger)

	read := func() (*layout.Spec, error) { return layout.ReadFile(input) }
	name := input
	if input == "" || input == stdinName {
		read = func() (*layout.Spec, error) {
			spec, err := layout.Read(c.In)
			if err != nil {
				return nil, fmt.Errorf("stdin: %w", err)
			}
			return spec, nil
		}
		name = "layout from stdin"
	}

	type result struct {
		spec *layout.Spec
		err  error
	}
	done := make(chan result, 1)
	go func() {
		spec, err := read()
		done <- result{spec, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		prog.done("Read " + name)
		return r.spec, nil
	}
}
