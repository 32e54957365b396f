package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
)

// designCommand creates the design command for the interactive designer.
func (c *CLI) designCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Open the interactive habitat designer",
		Long: `Open the interactive habitat designer.

The designer is a full-screen terminal UI: pick a shell shape, adjust its
dimensions, toggle onboard systems, and watch the geometry metrics update
live. Trigger auto-layout to place the enabled systems, then save the
result as a layout document.

Keys:
  ↑/↓        move between fields
  ←/→        change shape / adjust dimension
  space      toggle the selected system
  a          auto-arrange enabled systems
  c          clear placements
  s          save layout document
  q          quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesign(input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "layout document to start from")
	return cmd
}

func (c *CLI) runDesign(input string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	session, err := seedSession(cfg, input)
	if err != nil {
		return err
	}

	model := NewDesignerModel(session)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run designer: %w", err)
	}

	if m, ok := final.(DesignerModel); ok && m.SavedPath != "" {
		printSuccess("Layout saved")
		printFile(m.SavedPath)
		printNextStep("Render", "solis render "+m.SavedPath)
	}
	return nil
}

// seedSession builds the starting session from the config defaults and an
// optional input document.
func seedSession(cfg Config, input string) (layout.Session, error) {
	shape, err := habitat.ParseShape(cfg.Defaults.Shape)
	if err != nil {
		shape = habitat.ShapeCylinder
	}
	dims := habitat.Dimensions{Radius: cfg.Defaults.Radius, Height: cfg.Defaults.Height}
	if dims.Radius <= 0 {
		dims.Radius = 10
	}
	if dims.Height <= 0 {
		dims.Height = 15
	}

	var enabled []habitat.SystemKind
	for _, id := range cfg.Defaults.Systems {
		if k := habitat.SystemKind(id); k.Known() {
			enabled = append(enabled, k)
		}
	}

	session := layout.NewSession(shape, dims).WithEnabled(enabled)

	if input != "" {
		doc, err := document.ReadFile(input)
		if err != nil {
			return layout.Session{}, err
		}
		s, d, sys, err := doc.Apply()
		if err != nil {
			return layout.Session{}, err
		}
		session = layout.NewSession(s, d).WithEnabled(sys)
	}

	return session, nil
}

// defaultSavePath names saved documents with a timestamp so repeated saves
// don't clobber each other.
func defaultSavePath() string {
	return fmt.Sprintf("habitat-layout-%s.json", time.Now().Format("20060102-150405"))
}
