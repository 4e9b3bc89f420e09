package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/preset"
)

// presetCommand creates the preset management command.
func (c *CLI) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved slider settings",
	}

	cmd.AddCommand(c.presetSaveCommand())
	cmd.AddCommand(c.presetListCommand())
	cmd.AddCommand(c.presetShowCommand())
	cmd.AddCommand(c.presetDeleteCommand())

	return cmd
}

// presetSaveCommand creates the "preset save" subcommand.
func (c *CLI) presetSaveCommand() *cobra.Command {
	settings := newSettingsFlags()
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save settings under a name",
		Example: `  slidertrack preset save half --value 0.5 --fill min
  slidertrack preset save from-file -c slider.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.resolve(cmd)
			if err != nil {
				return err
			}
			p, err := preset.New(args[0], s)
			if err != nil {
				return err
			}
			store, err := newPresetStore()
			if err != nil {
				return err
			}
			if err := store.Put(cmd.Context(), p); err != nil {
				return err
			}
			printSuccess("Saved preset %s", StyleHighlight.Render(p.Name))
			printDetail("Directory: %s", store.Path())
			return nil
		},
	}
	settings.bind(cmd)
	return cmd
}

// presetListCommand creates the "preset list" subcommand.
func (c *CLI) presetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newPresetStore()
			if err != nil {
				return err
			}
			presets, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				printInfo("No presets saved")
				printNextStep("Save one with", "slidertrack preset save <name>")
				return nil
			}
			for _, p := range presets {
				printKeyValue(p.Name, fmt.Sprintf("value %.2f · fill %s · %s",
					p.Settings.HandleValue, p.Settings.Fill, p.CreatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

// presetShowCommand creates the "preset show" subcommand.
func (c *CLI) presetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a preset as TOML",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: presetArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newPresetStore()
			if err != nil {
				return err
			}
			p, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return config.Encode(os.Stdout, p.Settings)
		},
	}
}

// presetDeleteCommand creates the "preset delete" subcommand.
func (c *CLI) presetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a preset",
		Args:    cobra.ExactArgs(1),

		ValidArgsFunction: presetArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newPresetStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted preset %s", args[0])
			return nil
		},
	}
}

// completePresets completes saved preset names.
func completePresets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, err := newPresetStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	presets, err := store.List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, p := range presets {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, p.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// presetArg completes the single preset-name argument of show and delete.
func presetArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completePresets(cmd, args, toComplete)
}
