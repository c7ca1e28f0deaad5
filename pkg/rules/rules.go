package rules

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/matzehuels/layoutrail/pkg/layout"
	"github.com/matzehuels/layoutrail/pkg/observability"
	"github.com/matzehuels/layoutrail/pkg/platform"
)

// Default thresholds.
const (
	DefaultCTAMinWidthPx  = 120
	DefaultCTAMinHeightPx = 44
	DefaultLegalMinScale  = 0.65
)

// Ruleset holds the thresholds and any profiles added on top of the
// built-in platform table. The zero value is not usable; start from
// [Default].
type Ruleset struct {
	CTAMinWidthPx  float64
	CTAMinHeightPx float64
	LegalMinScale  float64

	extra map[string]platform.Profile
}

// Default returns the built-in ruleset.
func Default() *Ruleset {
	return &Ruleset{
		CTAMinWidthPx:  DefaultCTAMinWidthPx,
		CTAMinHeightPx: DefaultCTAMinHeightPx,
		LegalMinScale:  DefaultLegalMinScale,
	}
}

// DefaultThresholds reports whether r uses the built-in CTA and legal
// thresholds.
func (r *Ruleset) DefaultThresholds() bool {
	return r.CTAMinWidthPx == DefaultCTAMinWidthPx &&
		r.CTAMinHeightPx == DefaultCTAMinHeightPx &&
		r.LegalMinScale == DefaultLegalMinScale
}

// Validate checks spec against the built-in ruleset.
func Validate(spec *layout.Spec) []Violation {
	return Default().Validate(spec)
}

// Resolve returns the effective format id and profile for id. Profiles
// added to the ruleset are matched before falling back.
func (r *Ruleset) Resolve(id string) (string, platform.Profile) {
	if p, ok := r.extra[id]; ok {
		return id, p
	}
	return platform.Resolve(id)
}

// Profiles returns every profile the ruleset knows, keyed by format id.
func (r *Ruleset) Profiles() map[string]platform.Profile {
	out := make(map[string]platform.Profile, len(r.extra)+3)
	for _, id := range platform.IDs() {
		out[id], _ = platform.Lookup(id)
	}
	for id, p := range r.extra {
		out[id] = p
	}
	return out
}

// ProfileIDs returns the ids of [Ruleset.Profiles] in sorted order.
func (r *Ruleset) ProfileIDs() []string {
	profiles := r.Profiles()
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate returns every violation in spec, in block order. The result is
// empty when the layout passes.
func (r *Ruleset) Validate(spec *layout.Spec) []Violation {
	_, p := r.Resolve(spec.FormatID)
	w, h := spec.Canvas(p)
	zone := p.SafeZone(w, h)

	var out []Violation
	for _, b := range spec.TextBlocks {
		out = r.checkBlock(out, b, zone, w, h)
	}
	return out
}

// ValidateContext is Validate with observability hooks around it.
func (r *Ruleset) ValidateContext(ctx context.Context, spec *layout.Spec) []Violation {
	id, _ := r.Resolve(spec.FormatID)
	hooks := observability.Validation()

	hooks.OnValidateStart(ctx, id, len(spec.TextBlocks))
	start := time.Now()
	out := r.Validate(spec)
	hooks.OnValidateComplete(ctx, id, len(out), time.Since(start))

	return out
}

func (r *Ruleset) checkBlock(out []Violation, b layout.TextBlock, zone platform.SafeZone, w, h float64) []Violation {
	add := func(rule Rule, msg string) {
		out = append(out, Violation{BlockID: b.ID, Rule: rule, Message: msg})
	}

	box := b.BBox
	if box.Y < zone.Top {
		add(RuleTopSafeZone, "extends into top safe zone")
	}
	if box.Bottom() > zone.Bottom {
		add(RuleBottomSafeZone, "extends into bottom safe zone")
	}
	if box.X < zone.Left {
		add(RuleLeftSafeZone, "extends into left safe zone")
	}
	if box.Right() > zone.Right {
		add(RuleRightSafeZone, "extends into right safe zone")
	}

	switch b.Role {
	case layout.RoleCTA:
		pw, ph := box.Width*w, box.Height*h
		if ph < r.CTAMinHeightPx || pw < r.CTAMinWidthPx {
			add(RuleCTASize, fmt.Sprintf("CTA below min size %gx%gpx", r.CTAMinWidthPx, r.CTAMinHeightPx))
		}
	case layout.RoleLegal:
		if b.Scale < r.LegalMinScale {
			add(RuleLegalScale, "legal text scale below minimum")
		}
	}

	return out
}
