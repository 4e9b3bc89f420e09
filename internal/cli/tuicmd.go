package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/pipeline"
)

// tuiCommand creates the interactive slider command.
func (c *CLI) tuiCommand() *cobra.Command {
	var save string
	var width int
	settings := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Drive a slider interactively",
		Long: `Tui opens a terminal view of the slider. Arrow keys move the handle and the
track is re-planned every tick. With --save the final settings are written
to a TOML file on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.resolve(cmd)
			if err != nil {
				return err
			}
			slider, err := s.NewSlider()
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewSliderModel(slider, width), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			m := final.(SliderModel)
			loggerFromContext(cmd.Context()).Debug("Slider closed", "ticks", m.Driver.Ticks())

			if save == "" {
				return nil
			}
			if err := config.Save(save, config.FromSlider(m.Slider)); err != nil {
				return err
			}
			printSuccess("Saved settings")
			printFile(save)
			return nil
		},
	}

	settings.bind(cmd)
	cmd.Flags().StringVar(&save, "save", "", "write the final settings to this file")
	cmd.Flags().IntVar(&width, "width", pipeline.DefaultWidth, "track bar width in cells")

	return cmd
}
