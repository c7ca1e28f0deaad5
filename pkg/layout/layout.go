package layout

import "github.com/matzehuels/layoutrail/pkg/platform"

// Role marks a text block that is subject to role-specific rules.
type Role string

// Recognized roles. Any other value carries no extra rules.
const (
	RoleCTA   Role = "cta"
	RoleLegal Role = "legal"
)

const (
	// DefaultBlockID names blocks that do not carry an id.
	DefaultBlockID = "?"

	// DefaultScale is the text scale of blocks that do not set one.
	DefaultScale = 1.0
)

// Spec is a decoded LayoutSpec with defaults applied.
type Spec struct {
	// FormatID is the platform aspect-ratio key, empty when absent.
	FormatID string

	// WidthPx and HeightPx override the profile's reference canvas when set.
	WidthPx  *float64
	HeightPx *float64

	TextBlocks []TextBlock
}

// TextBlock is one placed block of text.
type TextBlock struct {
	ID    string
	BBox  Rect
	Role  Role
	Scale float64
}

// Rect is a rectangle in normalized canvas coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Canvas returns the effective canvas size in pixels: the spec's own
// width and height where present, the profile's reference size otherwise.
func (s *Spec) Canvas(p platform.Profile) (w, h float64) {
	w, h = p.WidthPx, p.HeightPx
	if s.WidthPx != nil {
		w = *s.WidthPx
	}
	if s.HeightPx != nil {
		h = *s.HeightPx
	}
	return w, h
}

// NewTextBlock returns a block with the given id and bbox and the default
// scale.
func NewTextBlock(id string, bbox Rect) TextBlock {
	return TextBlock{ID: id, BBox: bbox, Scale: DefaultScale}
}
