package platform

import "sort"

// Format ids of the built-in profiles.
const (
	Format4x5  = "4x5"
	Format9x16 = "9x16"
	Format1x1  = "1:1"
)

const (
	// DefaultFormatID is used when a layout does not name a format.
	DefaultFormatID = Format4x5

	// FallbackFormatID is used when a layout names a format that is not known.
	FallbackFormatID = Format1x1
)

// Profile is the reference canvas and safe-zone insets of one placement,
// all in pixels.
type Profile struct {
	WidthPx  float64
	HeightPx float64
	TopPx    float64
	BottomPx float64
	LeftPx   float64
	RightPx  float64
}

// SafeZone holds normalized safe-zone boundaries. Content must satisfy
// Top <= y, y+height <= Bottom, Left <= x and x+width <= Right.
type SafeZone struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

var profiles = map[string]Profile{
	Format4x5:  {WidthPx: 1440, HeightPx: 1800, TopPx: 180, BottomPx: 180, LeftPx: 80, RightPx: 80},
	Format9x16: {WidthPx: 1440, HeightPx: 2560, TopPx: 240, BottomPx: 492, LeftPx: 80, RightPx: 80},
	Format1x1:  {WidthPx: 1080, HeightPx: 1080, TopPx: 80, BottomPx: 80, LeftPx: 80, RightPx: 80},
}

// Lookup returns the built-in profile for id.
func Lookup(id string) (Profile, bool) {
	p, ok := profiles[id]
	return p, ok
}

// Resolve returns the effective format id and its profile.
func Resolve(id string) (string, Profile) {
	if id == "" {
		id = DefaultFormatID
	}
	if p, ok := profiles[id]; ok {
		return id, p
	}
	return FallbackFormatID, profiles[FallbackFormatID]
}

// IDs returns the built-in format ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SafeZone normalizes the profile insets against an effective canvas of
// w by h pixels. The insets are divided by w and h as given, so a canvas
// that overrides the profile's reference size scales the zones with it.
func (p Profile) SafeZone(w, h float64) SafeZone {
	return SafeZone{
		Top:    p.TopPx / h,
		Bottom: 1 - p.BottomPx/h,
		Left:   p.LeftPx / w,
		Right:  1 - p.RightPx/w,
	}
}

// Valid reports whether the profile describes a usable canvas.
func (p Profile) Valid() bool {
	return p.WidthPx > 0 && p.HeightPx > 0 &&
		p.TopPx >= 0 && p.BottomPx >= 0 && p.LeftPx >= 0 && p.RightPx >= 0
}
