package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/errors"
	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/space"
)

// nearestCommand creates the nearest command.
func (c *CLI) nearestCommand() *cobra.Command {
	var point, origin string
	settings := newSettingsFlags()

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Report the slider value closest to a point",
		Long: `Nearest projects a world-space point onto the slider track and prints the
value a pointer at that point would select, along with the projected position.

The handle range is used unless --allow-jump is set, in which case the whole
track is reachable.`,
		Example: `  slidertrack nearest --point 2,0,0
  slidertrack nearest --point 12,1,0 --origin 10,0,0 --allow-jump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVec3(point)
			if err != nil {
				return err
			}
			o, err := parseVec3(origin)
			if err != nil {
				return err
			}
			s, err := settings.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runNearest(cmd.Context(), pipeline.Options{Settings: s}, p, o)
		},
	}

	settings.bind(cmd)
	cmd.Flags().StringVarP(&point, "point", "p", "0,0,0", "query point as x,y,z")
	cmd.Flags().StringVar(&origin, "origin", "0,0,0", "slider origin in world space as x,y,z")

	return cmd
}

func (c *CLI) runNearest(ctx context.Context, opts pipeline.Options, point, origin space.Vec3) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	slider, _, err := runner.Build(ctx, opts)
	if err != nil {
		return err
	}
	slider.Frame = space.Identity()
	slider.Frame.Origin = origin

	pos := slider.NearestWorldPosition(point)
	printKeyValue("value", fmt.Sprintf("%.4f", slider.ValueViaNearestWorldPosition(point)))
	printKeyValue("position", formatVec3(pos))
	return nil
}

// parseVec3 parses "x,y,z". Missing trailing components are zero.
func parseVec3(s string) (space.Vec3, error) {
	var v space.Vec3
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return v, errors.New(errors.ErrCodeInvalidInput, "point %q has more than 3 components", s)
	}
	dst := []*float32{&v.X, &v.Y, &v.Z}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return v, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
		}
		*dst[i] = float32(f)
	}
	return v, nil
}

func formatVec3(v space.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
