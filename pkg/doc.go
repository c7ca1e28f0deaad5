// Package pkg provides the libraries behind validate-layout.
//
// # Overview
//
// validate-layout checks the text placements of a social-media creative
// against the hard rails of its platform before the creative ships. The pkg
// directory is organized as follows:
//
//  1. [platform] - Safe-zone profiles per aspect ratio
//  2. [layout] - LayoutSpec document and JSON decoding
//  3. [rules] - The validator, its thresholds and the TOML rules file
//  4. [errors] - Coded errors for input and configuration failures
//  5. [observability] - Hooks around validation runs
//
// # Data Flow
//
//	LayoutSpec JSON
//	       ↓
//	layout.Read ──→ layout.Spec (defaults applied)
//	       ↓
//	rules.Validate ──→ platform profile + safe zone
//	       ↓
//	[]rules.Violation ("<block id>: <message>")
//
// # Quick Start
//
//	spec, err := layout.ReadFile("creative.json")
//	if err != nil {
//	    return err
//	}
//	if vs := rules.Validate(spec); len(vs) > 0 {
//	    for _, v := range vs {
//	        fmt.Fprintln(os.Stderr, v)
//	    }
//	    os.Exit(1)
//	}
//
// [platform]: https://pkg.go.dev/github.com/matzehuels/layoutrail/pkg/platform
// [layout]: https://pkg.go.dev/github.com/matzehuels/layoutrail/pkg/layout
// [rules]: https://pkg.go.dev/github.com/matzehuels/layoutrail/pkg/rules
// [errors]: https://pkg.go.dev/github.com/matzehuels/layoutrail/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/layoutrail/pkg/observability
package pkg
