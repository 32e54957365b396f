package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

// metricsCommand creates the metrics command for computing shell geometry.
func (c *CLI) metricsCommand() *cobra.Command {
	var (
		shapeName string
		radius    float64
		height    float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute volume, surface area, and crew capacity for a shell",
		Long: `Compute geometry metrics for a habitat shell.

Given a shape and its dimensions, metrics prints the enclosed volume, the
hull surface area, and the derived crew capacity (one occupant per 20
volume units). Values are rounded to the nearest integer for display; use
--json for full precision.

For a sphere, height is ignored by the formulas. For a torus, radius is
the major radius; the minor radius is fixed at 0.3 × radius.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMetrics(shapeName, radius, height, asJSON)
		},
	}

	cmd.Flags().StringVarP(&shapeName, "shape", "s", "cylinder", "shell shape: cylinder, sphere, cube, torus")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 10, "shell radius (major radius for torus)")
	cmd.Flags().Float64Var(&height, "height", 15, "shell height (ignored for sphere)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit full-precision JSON instead of the summary")

	return cmd
}

func (c *CLI) runMetrics(shapeName string, radius, height float64, asJSON bool) error {
	shape, dims, err := parseShellFlags(shapeName, radius, height)
	if err != nil {
		return err
	}

	m := habitat.Compute(shape, dims)
	c.Logger.Debug("computed metrics", "shape", shape, "radius", dims.Radius, "height", dims.Height)

	if asJSON {
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	rounded := m.Rounded()
	printKeyValue("Shape", shape.String())
	printKeyValue("Volume", fmt.Sprintf("%.0f", rounded.Volume))
	printKeyValue("Surface area", fmt.Sprintf("%.0f", rounded.SurfaceArea))
	printKeyValue("Crew capacity", fmt.Sprintf("%d", rounded.CrewCapacity))
	return nil
}
