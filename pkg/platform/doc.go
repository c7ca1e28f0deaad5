// Package platform holds the safe-zone profiles for each supported
// social-media aspect ratio.
//
// A [Profile] records the reference canvas size of a placement and the
// number of pixels along each edge that the platform covers with its own UI
// chrome. Text must stay clear of those insets.
//
// # Built-in Profiles
//
//	formatId  width  height  top  bottom  left  right
//	4x5       1440   1800    180  180     80    80
//	9x16      1440   2560    240  492     80    80
//	1:1       1080   1080    80   80      80    80
//
// The values are shared with the layout generator and must not drift. The
// table is compiled in and never mutated; [Lookup] and [Resolve] hand out
// copies.
//
// # Resolution
//
// [Resolve] maps a format id to a profile. An empty id selects
// [DefaultFormatID]; an id that is set but unknown selects
// [FallbackFormatID]:
//
//	id, p := platform.Resolve("")      // "4x5"
//	id, p = platform.Resolve("16x9")   // "1:1"
//
// # Safe Zones
//
// [Profile.SafeZone] converts the pixel insets into normalized boundaries
// for a given effective canvas size:
//
//	z := p.SafeZone(1440, 1800)
//	// z.Top = 0.1, z.Bottom = 0.9, z.Left ≈ 0.0556, z.Right ≈ 0.9444
package platform
