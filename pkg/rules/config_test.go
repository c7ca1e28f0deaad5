package rules

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/layoutrail/pkg/errors"
	"github.com/matzehuels/layoutrail/pkg/layout"
	"github.com/matzehuels/layoutrail/pkg/platform"
)

func TestLoadEmptyMatchesDefault(t *testing.T) {
	rs, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(rs, Default()) {
		t.Errorf("Load(\"\") = %+v, want %+v", rs, Default())
	}
}

func TestLoadThresholds(t *testing.T) {
	rs, err := Load(strings.NewReader(`
[cta]
min_width = 200
min_height = 60.5

[legal]
min_scale = 0.8
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if rs.CTAMinWidthPx != 200 || rs.CTAMinHeightPx != 60.5 {
		t.Errorf("CTA thresholds = %vx%v, want 200x60.5", rs.CTAMinWidthPx, rs.CTAMinHeightPx)
	}
	if rs.LegalMinScale != 0.8 {
		t.Errorf("LegalMinScale = %v, want 0.8", rs.LegalMinScale)
	}

	spec := mustRead(t, `{"textBlocks":[
		{"id":"cta","role":"cta","bbox":{"x":0.2,"y":0.2,"width":0.1,"height":0.1}},
		{"id":"legal","role":"legal","scale":0.7,"bbox":{"x":0.2,"y":0.5,"width":0.1,"height":0.1}}
	]}`)
	got := Strings(rs.Validate(spec))
	want := []string{
		"cta: CTA below min size 200x60.5px",
		"legal: legal text scale below minimum",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %q, want %q", got, want)
	}
}

func TestLoadPartialThresholdsKeepDefaults(t *testing.T) {
	rs, err := Load(strings.NewReader("[legal]\nmin_scale = 0.5\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rs.CTAMinWidthPx != DefaultCTAMinWidthPx || rs.CTAMinHeightPx != DefaultCTAMinHeightPx {
		t.Errorf("CTA thresholds changed: %vx%v", rs.CTAMinWidthPx, rs.CTAMinHeightPx)
	}
}

func TestDefaultThresholds(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want bool
	}{
		{"empty", "", true},
		{"defaults spelled out", "[cta]\nmin_width = 120\nmin_height = 44\n[legal]\nmin_scale = 0.65\n", true},
		{"profiles only", "[profiles.\"2x3\"]\nwidth = 1200\nheight = 1800\n", true},
		{"cta width", "[cta]\nmin_width = 100\n", false},
		{"cta height", "[cta]\nmin_height = 40\n", false},
		{"legal scale", "[legal]\nmin_scale = 0.5\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := Load(strings.NewReader(tt.toml))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := rs.DefaultThresholds(); got != tt.want {
				t.Errorf("DefaultThresholds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	rs, err := Load(strings.NewReader(`
[profiles."2x3"]
width = 1200
height = 1800
top = 120
bottom = 160
left = 60
right = 60
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	id, p := rs.Resolve("2x3")
	if id != "2x3" {
		t.Fatalf("Resolve(2x3) = %q", id)
	}
	want := platform.Profile{WidthPx: 1200, HeightPx: 1800, TopPx: 120, BottomPx: 160, LeftPx: 60, RightPx: 60}
	if p != want {
		t.Errorf("profile = %+v, want %+v", p, want)
	}

	// Built-in resolution is unchanged.
	if id, _ := rs.Resolve(""); id != platform.DefaultFormatID {
		t.Errorf("Resolve(\"\") = %q, want %q", id, platform.DefaultFormatID)
	}
	if id, _ := rs.Resolve("16x9"); id != platform.FallbackFormatID {
		t.Errorf("Resolve(16x9) = %q, want %q", id, platform.FallbackFormatID)
	}

	if got, want := rs.ProfileIDs(), []string{"1:1", "2x3", "4x5", "9x16"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ProfileIDs() = %v, want %v", got, want)
	}

	// y=0.07 clears the custom 120/1800 inset but not the 1:1 fallback's 80/1080.
	spec := &layout.Spec{
		FormatID:   "2x3",
		TextBlocks: []layout.TextBlock{layout.NewTextBlock("b", layout.Rect{X: 0.2, Y: 0.07, Width: 0.5, Height: 0.5})},
	}
	if got := rs.Validate(spec); len(got) != 0 {
		t.Errorf("Validate() = %v, want none", got)
	}
	got := Validate(spec)
	if len(got) != 1 || got[0].Rule != RuleTopSafeZone {
		t.Errorf("default ruleset should resolve 2x3 to 1:1 and flag the top edge, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "[cta\nmin_width = 1"},
		{"unknown section", "[headline]\nmin_size = 3"},
		{"unknown key", "[cta]\nmin_area = 3"},
		{"unknown profile key", "[profiles.x]\nwidth = 1\nheight = 1\ndepth = 1"},
		{"wrong type", "[legal]\nmin_scale = \"small\""},
		{"negative threshold", "[cta]\nmin_width = -1"},
		{"redefine built-in", "[profiles.\"4x5\"]\nwidth = 100\nheight = 100"},
		{"zero height", "[profiles.x]\nwidth = 100"},
		{"negative inset", "[profiles.x]\nwidth = 100\nheight = 100\ntop = -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), errors.ErrCodeInvalidConfig, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	if err := os.WriteFile(path, []byte("[legal]\nmin_scale = 0.7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if rs.LegalMinScale != 0.7 {
		t.Errorf("LegalMinScale = %v, want 0.7", rs.LegalMinScale)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestAddProfile(t *testing.T) {
	rs := Default()
	if err := rs.AddProfile("", platform.Profile{WidthPx: 1, HeightPx: 1}); err == nil {
		t.Error("empty id should be rejected")
	}
	if err := rs.AddProfile("1:1", platform.Profile{WidthPx: 1, HeightPx: 1}); err == nil {
		t.Error("built-in id should be rejected")
	}
	if err := rs.AddProfile("3x4", platform.Profile{WidthPx: 1080, HeightPx: 1440}); err != nil {
		t.Errorf("AddProfile: %v", err)
	}

	// Default() hands out independent rulesets.
	if _, ok := Default().Profiles()["3x4"]; ok {
		t.Error("profile leaked into another ruleset")
	}
}
