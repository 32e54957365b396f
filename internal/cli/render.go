package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/cache"
	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/errors"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
	"github.com/Azmathzahask/SOLIS/pkg/observability"
	"github.com/Azmathzahask/SOLIS/pkg/schematic"
)

// Output formats for the render command.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// artifactTTL bounds how long rendered schematics stay cached.
const artifactTTL = 7 * 24 * time.Hour

// renderCommand creates the render command for schematic output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format  string
		output  string
		noCache bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a plan-view schematic of a layout document",
		Long: `Render a plan-view schematic of a layout document.

The render command reads a layout.json document, runs auto-layout for its
enabled systems, and delegates drawing to Graphviz. Output is SVG
(default), PNG, or raw DOT.

Rendered artifacts are cached locally keyed by document content; pass
--no-cache to force a fresh render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatSVG, formatPNG, formatDOT:
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot)", format)
			}
			return c.runRender(cmd.Context(), args[0], format, output, noCache, seed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for the vertical jitter shown in labels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, format, output string, noCache bool, seed uint64) error {
	doc, err := document.ReadFile(input)
	if err != nil {
		return err
	}
	shape, dims, enabled, err := doc.Apply()
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	artifactCache, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer artifactCache.Close()

	docData, err := doc.Marshal()
	if err != nil {
		return err
	}
	// Seed participates in the key: different jitter, different artifact.
	key := cache.ArtifactKey(append(docData, fmt.Sprintf("|%s|%d", format, seed)...), format)

	artifact, cacheHit, err := artifactCache.Get(ctx, key)
	if cacheHit {
		observability.Cache().OnCacheHit(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, key)
	}
	if err != nil || !cacheHit {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s schematic...", shape))
		spinner.Start()

		rng := rand.New(rand.NewPCG(seed, seed))
		placed := layout.Arrange(enabled, dims, rng)
		dot := schematic.ToDOT(shape, dims, placed)

		switch format {
		case formatDOT:
			artifact = []byte(dot)
		case formatPNG:
			artifact, err = schematic.RenderPNG(ctx, dot)
		default:
			artifact, err = schematic.RenderSVG(ctx, dot)
		}
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render schematic: %w", err)
		}
		spinner.Stop()

		if err := artifactCache.Set(ctx, key, artifact, artifactTTL); err != nil {
			loggerFromContext(ctx).Debug("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, len(artifact))
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, artifact, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printShellStats(shape.String(), len(enabled), cacheHit)
	return nil
}
