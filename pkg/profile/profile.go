// Package profile loads optional motion tuning profiles.
//
// A profile is a kinetic.yaml file (or one of the built-in presets) that
// tunes gesture thresholds, spring feel and scroll physics in one place,
// so an application can switch its whole motion character between e.g.
// desktop and touch form factors. A missing file is not an error; every
// field falls back to the library defaults.
package profile

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-kinetic/kinetic/pkg/animation"
	"github.com/go-kinetic/kinetic/pkg/errors"
	"github.com/go-kinetic/kinetic/pkg/gestures"
	"github.com/go-kinetic/kinetic/pkg/scroll"
)

// FileName is the profile file looked up by [LoadOptional].
const FileName = "kinetic.yaml"

// Profile is the root of a motion tuning profile. Zero values everywhere
// mean "use the library defaults".
type Profile struct {
	Engine  Engine  `yaml:"engine,omitempty"`
	Gesture Gesture `yaml:"gesture,omitempty"`
	Spring  Spring  `yaml:"spring,omitempty"`
	Scroll  Scroll  `yaml:"scroll,omitempty"`
}

// Engine gates the profile on a minimum library version.
type Engine struct {
	// MinVersion is the lowest kinetic version this profile is written
	// for, e.g. "0.3.0". Empty disables the gate.
	MinVersion string `yaml:"min_version,omitempty"`
}

// Gesture tunes the pointer classifier.
type Gesture struct {
	LongPressMillis  int     `yaml:"long_press_millis,omitempty"`
	SwipeMinDistance float64 `yaml:"swipe_min_distance,omitempty"`
}

// Spring tunes the spring feel, either by naming a preset or by giving
// explicit parameters. Explicit parameters override the preset's.
type Spring struct {
	// Preset names one of the stock configs: gentle, wobbly, stiff,
	// slow, snappy.
	Preset        string  `yaml:"preset,omitempty"`
	Stiffness     float64 `yaml:"stiffness,omitempty"`
	Damping       float64 `yaml:"damping,omitempty"`
	Mass          float64 `yaml:"mass,omitempty"`
	RestThreshold float64 `yaml:"rest_threshold,omitempty"`
}

// Scroll tunes the scroll physics feel.
type Scroll struct {
	Deceleration         float64 `yaml:"deceleration,omitempty"`
	OverscrollResistance float64 `yaml:"overscroll_resistance,omitempty"`
	Momentum             *bool   `yaml:"momentum,omitempty"`
	Overscroll           *bool   `yaml:"overscroll,omitempty"`
}

// LoadOptional reads kinetic.yaml from dir if present. A missing file
// returns an empty profile and no error.
func LoadOptional(dir string) (*Profile, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, errors.New("profile.LoadOptional", errors.KindConfig, err)
	}
	return Parse(data)
}

// Parse decodes a profile from yaml.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.New("profile.Parse", errors.KindParsing, err)
	}
	return &p, nil
}

// Preset returns a copy of a built-in named profile.
func Preset(name string) (*Profile, bool) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	copied := *p
	return &copied, true
}

// PresetNames lists the built-in profile names.
func PresetNames() []string {
	return []string{"desktop", "touch", "dense"}
}

var boolTrue = true

var presets = map[string]*Profile{
	// desktop: pointer-precise input, quick long presses, no bounce.
	"desktop": {
		Gesture: Gesture{LongPressMillis: 400, SwipeMinDistance: 40},
		Spring:  Spring{Preset: "snappy"},
		Scroll:  Scroll{Deceleration: 0.92, Momentum: &boolTrue},
	},
	// touch: finger-sized thresholds and iOS-style elastic edges.
	"touch": {
		Gesture: Gesture{LongPressMillis: 500, SwipeMinDistance: 50},
		Spring:  Spring{Preset: "gentle"},
		Scroll:  Scroll{Deceleration: 0.96, OverscrollResistance: 0.5, Momentum: &boolTrue, Overscroll: &boolTrue},
	},
	// dense: tight lists and toolbars; minimal travel, stiff motion.
	"dense": {
		Gesture: Gesture{LongPressMillis: 350, SwipeMinDistance: 30},
		Spring:  Spring{Preset: "stiff"},
		Scroll:  Scroll{Deceleration: 0.9, Momentum: &boolTrue},
	},
}

// CheckEngine validates the profile's minimum version gate against the
// running library version. Versions are plain "major.minor.patch" strings.
func (p *Profile) CheckEngine(current string) error {
	if p.Engine.MinVersion == "" {
		return nil
	}
	minimum := canonical(p.Engine.MinVersion)
	if !semver.IsValid(minimum) {
		return errors.Errorf("profile.CheckEngine", errors.KindVersion,
			"invalid engine.min_version %q", p.Engine.MinVersion)
	}
	have := canonical(current)
	if !semver.IsValid(have) {
		return errors.Errorf("profile.CheckEngine", errors.KindVersion,
			"invalid library version %q", current)
	}
	if semver.Compare(have, minimum) < 0 {
		return errors.Errorf("profile.CheckEngine", errors.KindVersion,
			"profile requires kinetic >= %s, running %s", p.Engine.MinVersion, current)
	}
	return nil
}

func canonical(version string) string {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

// NewDetector builds a gesture detector tuned by the profile.
func (p *Profile) NewDetector() *gestures.Detector {
	return gestures.NewDetectorWithConfig(gestures.DetectorConfig{
		LongPressDuration: time.Duration(p.Gesture.LongPressMillis) * time.Millisecond,
		SwipeMinDistance:  p.Gesture.SwipeMinDistance,
	})
}

// SpringConfig resolves the profile's spring tuning: the named preset
// (default gentle) with any explicit parameters layered on top.
func (p *Profile) SpringConfig() animation.SpringConfig {
	cfg := resolveSpringPreset(p.Spring.Preset)
	if p.Spring.Stiffness > 0 {
		cfg.Stiffness = p.Spring.Stiffness
	}
	if p.Spring.Damping > 0 {
		cfg.Damping = p.Spring.Damping
	}
	if p.Spring.Mass > 0 {
		cfg.Mass = p.Spring.Mass
	}
	if p.Spring.RestThreshold > 0 {
		cfg.RestThreshold = p.Spring.RestThreshold
	}
	return cfg
}

// NewSpring builds a spring tuned by the profile.
func (p *Profile) NewSpring() *animation.Spring {
	return animation.NewSpring(p.SpringConfig())
}

// NewScrollPhysics builds scroll physics for the given bounds, tuned by
// the profile. Momentum defaults to on and overscroll to off when the
// profile leaves them unset.
func (p *Profile) NewScrollPhysics(minBound, maxBound float64) *scroll.Physics {
	cfg := scroll.Config{
		MinBound:             minBound,
		MaxBound:             maxBound,
		Deceleration:         p.Scroll.Deceleration,
		OverscrollResistance: p.Scroll.OverscrollResistance,
		Momentum:             true,
	}
	if cfg.Deceleration == 0 {
		cfg.Deceleration = 0.95
	}
	if cfg.OverscrollResistance == 0 {
		cfg.OverscrollResistance = 0.5
	}
	if p.Scroll.Momentum != nil {
		cfg.Momentum = *p.Scroll.Momentum
	}
	if p.Scroll.Overscroll != nil {
		cfg.Overscroll = *p.Scroll.Overscroll
	}
	return scroll.New(cfg)
}

// SpringPreset returns the stock spring config for a preset name.
// Unknown names report false.
func SpringPreset(name string) (animation.SpringConfig, bool) {
	switch strings.ToLower(name) {
	case "gentle":
		return animation.Gentle(), true
	case "wobbly":
		return animation.Wobbly(), true
	case "stiff":
		return animation.Stiff(), true
	case "slow":
		return animation.Slow(), true
	case "snappy":
		return animation.Snappy(), true
	default:
		return animation.SpringConfig{}, false
	}
}

func resolveSpringPreset(name string) animation.SpringConfig {
	if cfg, ok := SpringPreset(name); ok {
		return cfg
	}
	return animation.Gentle()
}
