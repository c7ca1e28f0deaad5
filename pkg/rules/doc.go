// Package rules checks a LayoutSpec against the hard rails every social
// creative must respect.
//
// # Rules
//
// Each text block is checked independently, in input order:
//
//   - Safe zones: the block must not start above the top boundary, end
//     below the bottom boundary, start left of the left boundary or end
//     right of the right boundary. Each edge is its own violation.
//   - CTA size: blocks with role "cta" must be at least 120x44 pixels on
//     the effective canvas.
//   - Legal scale: blocks with role "legal" must have a scale of at least
//     0.65.
//
// A block sitting exactly on a boundary or threshold passes.
//
// # Usage
//
//	spec, err := layout.ReadFile("creative.json")
//	if err != nil {
//	    return err
//	}
//	for _, v := range rules.Validate(spec) {
//	    fmt.Fprintln(os.Stderr, v)
//	}
//
// Validation never fails: missing fields have defaults and unknown format
// ids fall back to a default profile. A [Ruleset] can extend the built-in
// profiles and adjust thresholds, typically from a TOML file loaded with
// [LoadFile].
package rules
