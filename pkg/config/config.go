// Package config loads and saves slider settings files.
//
// Settings are stored as TOML. Keys missing from a file keep their defaults,
// which match a freshly built slider:
//
//	size_x = 10.0
//	size_y = 10.0
//	alpha = 1.0
//	zero_value = 0.5
//	handle_value = 0.5
//	jump_value = 0.0
//	allow_jump = false
//	fill = "zero"
//	anchor = "middle-center"
//	handle_size = 2.0
//	jump_size = 1.0
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/slidertrack/pkg/errors"
	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// Settings is the file and wire form of a slider's configuration.
type Settings struct {
	SizeX             float32 `toml:"size_x" json:"size_x"`
	SizeY             float32 `toml:"size_y" json:"size_y"`
	Alpha             float32 `toml:"alpha" json:"alpha"`
	ZeroValue         float32 `toml:"zero_value" json:"zero_value"`
	HandleValue       float32 `toml:"handle_value" json:"handle_value"`
	JumpValue         float32 `toml:"jump_value" json:"jump_value"`
	AllowJump         bool    `toml:"allow_jump" json:"allow_jump"`
	Fill              string  `toml:"fill" json:"fill"`
	Anchor            string  `toml:"anchor" json:"anchor"`
	Label             string  `toml:"label,omitempty" json:"label,omitempty"`
	HighlightProgress float32 `toml:"highlight_progress" json:"highlight_progress"`
	SelectionProgress float32 `toml:"selection_progress" json:"selection_progress"`
	ShowEdge          bool    `toml:"show_edge" json:"show_edge"`
	HandleSize        float32 `toml:"handle_size" json:"handle_size"`
	JumpSize          float32 `toml:"jump_size" json:"jump_size"`
	TrackInsetL       float32 `toml:"track_inset_l" json:"track_inset_l"`
	TrackInsetR       float32 `toml:"track_inset_r" json:"track_inset_r"`
}

// Default returns the settings of a freshly built slider.
func Default() Settings {
	return Settings{
		SizeX:       10,
		SizeY:       10,
		Alpha:       1,
		ZeroValue:   0.5,
		HandleValue: 0.5,
		Fill:        segment.FillFromZero.String(),
		Anchor:      widget.AnchorMiddleCenter.String(),
		HandleSize:  widget.DefaultHandleSizeY,
		JumpSize:    widget.DefaultJumpSizeY,
		TrackInsetL: widget.DefaultTrackInset,
		TrackInsetR: widget.DefaultTrackInset,
	}
}

// FillRule parses the fill setting.
func (s Settings) FillRule() (segment.FillRule, error) {
	r, err := segment.ParseFillRule(s.Fill)
	if err != nil {
		return r, errors.Wrap(errors.ErrCodeInvalidFillRule, err, "invalid fill %q", s.Fill)
	}
	return r, nil
}

// AnchorValue parses the anchor setting.
func (s Settings) AnchorValue() (widget.Anchor, error) {
	a, err := widget.ParseAnchor(s.Anchor)
	if err != nil {
		return a, errors.Wrap(errors.ErrCodeInvalidAnchor, err, "invalid anchor %q", s.Anchor)
	}
	return a, nil
}

// Validate checks every field. The planner would clamp out-of-range values;
// settings files and API requests are rejected instead so mistakes surface.
func (s Settings) Validate() error {
	if _, err := s.FillRule(); err != nil {
		return err
	}
	if _, err := s.AnchorValue(); err != nil {
		return err
	}
	values := []struct {
		name string
		v    float32
	}{
		{"alpha", s.Alpha},
		{"zero_value", s.ZeroValue},
		{"handle_value", s.HandleValue},
		{"jump_value", s.JumpValue},
		{"highlight_progress", s.HighlightProgress},
		{"selection_progress", s.SelectionProgress},
	}
	for _, f := range values {
		if err := errors.ValidateValue(f.name, float64(f.v)); err != nil {
			return err
		}
	}
	sizes := []struct {
		name string
		v    float32
	}{
		{"size_x", s.SizeX},
		{"size_y", s.SizeY},
		{"handle_size", s.HandleSize},
		{"jump_size", s.JumpSize},
		{"track_inset_l", s.TrackInsetL},
		{"track_inset_r", s.TrackInsetR},
	}
	for _, f := range sizes {
		if err := errors.ValidateSize(f.name, float64(f.v)); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies s onto a slider. It fails without touching the slider if s is
// invalid.
func (s Settings) Apply(w *widget.RectangleSlider) error {
	if err := s.Validate(); err != nil {
		return err
	}
	fill, _ := s.FillRule()
	anchor, _ := s.AnchorValue()

	w.SizeX = s.SizeX
	w.SizeY = s.SizeY
	w.Alpha = s.Alpha
	w.ZeroValue = s.ZeroValue
	w.HandleValue = s.HandleValue
	w.JumpValue = s.JumpValue
	w.AllowJump = s.AllowJump
	w.FillStartingPoint = fill
	w.Anchor = anchor
	w.Label = s.Label
	w.HighlightProgress = s.HighlightProgress
	w.SelectionProgress = s.SelectionProgress
	w.ShowEdge = s.ShowEdge
	w.Handle.SizeY = s.HandleSize
	w.Jump.SizeY = s.JumpSize
	w.Track.InsetL = s.TrackInsetL
	w.Track.InsetR = s.TrackInsetR
	return nil
}

// NewSlider builds a slider from s and runs one update so its plan and child
// placement are current.
func (s Settings) NewSlider() (*widget.RectangleSlider, error) {
	w := widget.NewRectangleSlider()
	if err := s.Apply(w); err != nil {
		return nil, err
	}
	w.TreeUpdate()
	return w, nil
}

// FromSlider captures a slider's current settings.
func FromSlider(w *widget.RectangleSlider) Settings {
	return Settings{
		SizeX:             w.SizeX,
		SizeY:             w.SizeY,
		Alpha:             w.Alpha,
		ZeroValue:         w.ZeroValue,
		HandleValue:       w.HandleValue,
		JumpValue:         w.JumpValue,
		AllowJump:         w.AllowJump,
		Fill:              w.FillStartingPoint.String(),
		Anchor:            w.Anchor.String(),
		Label:             w.Label,
		HighlightProgress: w.HighlightProgress,
		SelectionProgress: w.SelectionProgress,
		ShowEdge:          w.ShowEdge,
		HandleSize:        w.Handle.SizeY,
		JumpSize:          w.Jump.SizeY,
		TrackInsetL:       w.Track.InsetL,
		TrackInsetR:       w.Track.InsetR,
	}
}

// Decode reads TOML settings from r on top of the defaults.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse settings")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, errors.New(errors.ErrCodeInvalidInput, "unknown settings keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads a settings file.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as TOML.
func Encode(w io.Writer, s Settings) error {
	return toml.NewEncoder(w).Encode(s)
}

// Save writes s to path, creating parent directories.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
