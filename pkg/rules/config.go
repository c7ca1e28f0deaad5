package rules

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/layoutrail/pkg/errors"
	"github.com/matzehuels/layoutrail/pkg/platform"
)

// fileConfig mirrors the TOML rules file:
//
//	[cta]
//	min_width = 120
//	min_height = 44
//
//	[legal]
//	min_scale = 0.65
//
//	[profiles."2x3"]
//	width = 1200
//	height = 1800
//	top = 120
//	bottom = 160
//	left = 60
//	right = 60
type fileConfig struct {
	CTA struct {
		MinWidth  *float64 `toml:"min_width"`
		MinHeight *float64 `toml:"min_height"`
	} `toml:"cta"`
	Legal struct {
		MinScale *float64 `toml:"min_scale"`
	} `toml:"legal"`
	Profiles map[string]fileProfile `toml:"profiles"`
}

type fileProfile struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

// Load decodes a TOML rules file from r and applies it on top of [Default].
//
// Thresholds that are present replace the defaults. Profiles extend the
// built-in table; redefining a built-in format id is an error, as is any
// key the file format does not know.
func Load(r io.Reader) (*Ruleset, error) {
	var cfg fileConfig
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode rules")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.ruleset()
}

// LoadFile reads a TOML rules file from path. See [Load].
func LoadFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	rs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

func (c *fileConfig) ruleset() (*Ruleset, error) {
	rs := Default()

	if v := c.CTA.MinWidth; v != nil {
		if *v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cta.min_width must not be negative")
		}
		rs.CTAMinWidthPx = *v
	}
	if v := c.CTA.MinHeight; v != nil {
		if *v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cta.min_height must not be negative")
		}
		rs.CTAMinHeightPx = *v
	}
	if v := c.Legal.MinScale; v != nil {
		if *v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "legal.min_scale must not be negative")
		}
		rs.LegalMinScale = *v
	}

	ids := make([]string, 0, len(c.Profiles))
	for id := range c.Profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := rs.AddProfile(id, c.Profiles[id].profile()); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func (fp fileProfile) profile() platform.Profile {
	return platform.Profile{
		WidthPx:  fp.Width,
		HeightPx: fp.Height,
		TopPx:    fp.Top,
		BottomPx: fp.Bottom,
		LeftPx:   fp.Left,
		RightPx:  fp.Right,
	}
}

// AddProfile registers an extra platform profile under id.
func (r *Ruleset) AddProfile(id string, p platform.Profile) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "profile id must not be empty")
	}
	if _, ok := platform.Lookup(id); ok {
		return errors.New(errors.ErrCodeInvalidConfig, "profile %q is built in and cannot be redefined", id)
	}
	if !p.Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "profile %q: width and height must be positive and insets must not be negative", id)
	}
	if r.extra == nil {
		r.extra = make(map[string]platform.Profile)
	}
	r.extra[id] = p
	return nil
}
