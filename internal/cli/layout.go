package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
	"github.com/Azmathzahask/SOLIS/pkg/observability"
)

// layoutCommand creates the layout command for auto-arranging systems.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		shapeName  string
		radius     float64
		height     float64
		systemsStr string
		seed       uint64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "layout [layout.json]",
		Short: "Auto-arrange enabled systems inside the shell",
		Long: `Auto-arrange enabled systems inside the shell.

With a layout.json argument the shell configuration and enabled systems
are read from the document; otherwise they come from flags. Systems are
distributed evenly around a ring at 80% of the shell radius, in canonical
catalogue order, with a bounded random vertical offset for visual scatter.

Pass --seed for reproducible placement; without it the vertical jitter
differs between runs (the angular positions never do).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runLayout(cmd.Context(), input, shapeName, radius, height, systemsStr, seed, output)
		},
	}

	cmd.Flags().StringVarP(&shapeName, "shape", "s", "cylinder", "shell shape: cylinder, sphere, cube, torus")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 10, "shell radius (major radius for torus)")
	cmd.Flags().Float64Var(&height, "height", 15, "shell height (ignored for sphere)")
	cmd.Flags().StringVar(&systemsStr, "systems", "all", "comma-separated system kinds, or 'all'")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible vertical jitter")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write placements JSON (default: <input>.placements.json with a document input)")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, shapeName string, radius, height float64, systemsStr string, seed uint64, output string) error {
	var (
		shape   habitat.Shape
		dims    habitat.Dimensions
		enabled []habitat.SystemKind
		err     error
	)

	if input != "" {
		doc, err := document.ReadFile(input)
		if err != nil {
			return err
		}
		shape, dims, enabled, err = doc.Apply()
		if err != nil {
			return fmt.Errorf("load document %s: %w", input, err)
		}
	} else {
		shape, dims, err = parseShellFlags(shapeName, radius, height)
		if err != nil {
			return err
		}
		enabled, err = parseSystems(systemsStr)
		if err != nil {
			return err
		}
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	prog := newProgress(loggerFromContext(ctx))
	start := time.Now()
	observability.Layout().OnArrangeStart(ctx, shape.String(), len(enabled))
	placed := layout.Arrange(enabled, dims, rng)
	observability.Layout().OnArrangeComplete(ctx, shape.String(), len(enabled), time.Since(start))
	prog.done(fmt.Sprintf("Placed %d systems", len(placed)))

	if len(placed) == 0 {
		printWarning("No systems enabled, nothing to place")
		return nil
	}

	printPlacements(placed)
	printShellStats(shape.String(), len(placed), false)

	outputPath := output
	if outputPath == "" && input != "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".placements.json"
	}
	if outputPath != "" {
		data, err := json.MarshalIndent(placed, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal placements: %w", err)
		}
		if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}

	return nil
}

// printPlacements prints one line per placed system.
func printPlacements(placed []layout.PlacedSystem) {
	for _, p := range placed {
		info := p.Kind.Info()
		pos := fmt.Sprintf("(%7.2f, %6.2f, %7.2f)", p.Position.X, p.Position.Y, p.Position.Z)
		fmt.Println("  " + StyleHighlight.Render(info.Glyph) + " " +
			StyleValue.Render(fmt.Sprintf("%-18s", info.Label)) + " " +
			StyleDim.Render(pos))
	}
}
