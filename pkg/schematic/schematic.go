// Package schematic renders a top-down placement schematic of a habitat
// layout. All drawing is delegated to Graphviz: the core produces
// positions, this package translates them to pinned DOT nodes and hands
// the result to the external renderer. There is no 3D scene here — the
// schematic is a plan view of the placement ring.
package schematic

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
	"github.com/Azmathzahask/SOLIS/pkg/observability"
)

// pointsPerUnit scales shell-local coordinates to DOT points so small
// habitats don't collapse into overlapping nodes.
const pointsPerUnit = 18.0

// shellNodeID is the DOT node ID for the habitat hull marker.
const shellNodeID = "__shell__"

// ToDOT converts a placement set to Graphviz DOT for the neato engine.
// Each system becomes a pinned node at its (x, z) plan-view position,
// colored with its catalogue color and connected to a central hull node.
// The y (vertical) coordinate is shown in the node label instead of being
// drawn.
func ToDOT(shape habitat.Shape, dims habitat.Dimensions, placed []layout.PlacedSystem) string {
	var buf bytes.Buffer
	buf.WriteString("graph habitat {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=11, fixedsize=true, width=1.1];\n")
	buf.WriteString("  edge [color=grey70, style=dashed];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, pos=\"0,0!\", shape=doublecircle, fillcolor=white, width=1.4];\n",
		shellNodeID, shellLabel(shape, dims))

	for _, p := range placed {
		info := p.Kind.Info()
		label := fmt.Sprintf("%s\n%s\ny %+.1f", info.Glyph, info.Label, p.Position.Y)
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.2f,%.2f!\", fillcolor=%q];\n",
			p.Kind.String(), label,
			p.Position.X*pointsPerUnit/72, p.Position.Z*pointsPerUnit/72,
			info.Color)
	}

	buf.WriteString("\n")
	for _, p := range placed {
		fmt.Fprintf(&buf, "  %q -- %q;\n", shellNodeID, p.Kind.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func shellLabel(shape habitat.Shape, dims habitat.Dimensions) string {
	m := habitat.Compute(shape, dims).Rounded()
	return fmt.Sprintf("%s\nr %.0f  h %.0f\ncrew %d", strings.ToUpper(shape.String()), dims.Radius, dims.Height, m.CrewCapacity)
}

// RenderSVG renders a DOT schematic to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT schematic to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) (data []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(format))
	defer func() {
		observability.Render().OnRenderComplete(ctx, string(format), len(data), time.Since(start), err)
	}()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
