package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/config"
)

// settingsFlags binds slider settings to command flags. Values start from
// defaults, then a --config file or --preset, then any flag set explicitly.
type settingsFlags struct {
	configPath string
	presetName string
	s          config.Settings
}

func newSettingsFlags() *settingsFlags {
	return &settingsFlags{s: config.Default()}
}

func (f *settingsFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "settings file (TOML)")
	fl.StringVar(&f.presetName, "preset", "", "saved preset to start from")
	fl.Float32Var(&f.s.SizeX, "size-x", f.s.SizeX, "slider width")
	fl.Float32Var(&f.s.SizeY, "size-y", f.s.SizeY, "slider height")
	fl.Float32Var(&f.s.Alpha, "alpha", f.s.Alpha, "opacity (0-1)")
	fl.Float32Var(&f.s.ZeroValue, "zero", f.s.ZeroValue, "zero point value (0-1)")
	fl.Float32Var(&f.s.HandleValue, "value", f.s.HandleValue, "handle value (0-1)")
	fl.Float32Var(&f.s.JumpValue, "jump", f.s.JumpValue, "jump marker value (0-1)")
	fl.BoolVar(&f.s.AllowJump, "allow-jump", f.s.AllowJump, "show the jump marker")
	fl.StringVar(&f.s.Fill, "fill", f.s.Fill, "fill rule: zero, min, max")
	fl.StringVar(&f.s.Anchor, "anchor", f.s.Anchor, "anchor, e.g. middle-center")
	fl.StringVar(&f.s.Label, "label", f.s.Label, "slider label")
	fl.Float32Var(&f.s.HandleSize, "handle-size", f.s.HandleSize, "handle extent along the track")
	fl.Float32Var(&f.s.JumpSize, "jump-size", f.s.JumpSize, "jump marker extent along the track")
	fl.BoolVar(&f.s.ShowEdge, "show-edge", f.s.ShowEdge, "draw the container edge")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
	_ = cmd.MarkFlagFilename("config", "toml")
	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
	_ = cmd.RegisterFlagCompletionFunc("fill", fixedCompletion("zero", "min", "max"))
}

// overrides maps flag names to the field they set.
func (f *settingsFlags) overrides(dst *config.Settings) map[string]func() {
	return map[string]func(){
		"size-x":      func() { dst.SizeX = f.s.SizeX },
		"size-y":      func() { dst.SizeY = f.s.SizeY },
		"alpha":       func() { dst.Alpha = f.s.Alpha },
		"zero":        func() { dst.ZeroValue = f.s.ZeroValue },
		"value":       func() { dst.HandleValue = f.s.HandleValue },
		"jump":        func() { dst.JumpValue = f.s.JumpValue },
		"allow-jump":  func() { dst.AllowJump = f.s.AllowJump },
		"fill":        func() { dst.Fill = f.s.Fill },
		"anchor":      func() { dst.Anchor = f.s.Anchor },
		"label":       func() { dst.Label = f.s.Label },
		"handle-size": func() { dst.HandleSize = f.s.HandleSize },
		"jump-size":   func() { dst.JumpSize = f.s.JumpSize },
		"show-edge":   func() { dst.ShowEdge = f.s.ShowEdge },
	}
}

// resolve returns the validated settings for cmd.
func (f *settingsFlags) resolve(cmd *cobra.Command) (config.Settings, error) {
	out := config.Default()
	switch {
	case f.configPath != "":
		s, err := config.Load(f.configPath)
		if err != nil {
			return out, err
		}
		out = s
	case f.presetName != "":
		store, err := newPresetStore()
		if err != nil {
			return out, err
		}
		p, err := store.Get(cmd.Context(), f.presetName)
		if err != nil {
			return out, err
		}
		out = p.Settings
	}

	for name, set := range f.overrides(&out) {
		if cmd.Flags().Changed(name) {
			set()
		}
	}
	return out, out.Validate()
}

// fixedCompletion completes a flag from a fixed list of values.
func fixedCompletion(values ...string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
