package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/store"
)

// storeCommand creates the store command for saved-layout management.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage saved layouts",
		Long: `Manage saved layouts.

Saved layouts live in the configured store backend: local JSON files by
default, or Redis/MongoDB when running against a shared design server
(see the [store] section of ~/.config/solis/config.toml).`,
	}

	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())
	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// openStore loads the config and opens the configured backend.
func (c *CLI) openStore(ctx context.Context) (store.LayoutStore, error) {
	cfg, err := loadConfig("")
	if err != nil {
		return nil, err
	}
	s, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open layout store: %w", err)
	}
	return s, nil
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			layouts, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(layouts) == 0 {
				printInfo("No saved layouts")
				return nil
			}

			for _, l := range layouts {
				fmt.Println("  " + StyleHighlight.Render(fmt.Sprintf("%-8s", shortID(l.ID))) + "  " +
					StyleValue.Render(fmt.Sprintf("%-24s", l.Name)) + "  " +
					StyleDim.Render(fmt.Sprintf("%s · %d systems · %s",
						l.Document.Shape, len(l.Document.Systems), l.CreatedAt.Format("2006-01-02 15:04"))))
			}
			printNewline()
			fmt.Println("  " + StyleNumber.Render(fmt.Sprintf("%d", len(layouts))) + StyleDim.Render(" saved layouts"))
			return nil
		},
	}
}

// storeShowCommand creates the "store show" subcommand.
func (c *CLI) storeShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a saved layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			l, err := c.findLayout(cmd.Context(), s, args[0])
			if err != nil {
				return err
			}

			if output != "" {
				if err := document.WriteFile(l.Document, output); err != nil {
					return err
				}
				printSuccess("Exported %q", l.Name)
				printFile(output)
				return nil
			}

			data, err := l.Document.Marshal()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "export the document to a file instead of printing")
	return cmd
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [layout.json]",
		Short: "Save a layout document to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			saved, err := store.New(name, doc)
			if err != nil {
				return err
			}

			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Put(cmd.Context(), saved); err != nil {
				return err
			}

			printSuccess("Saved layout %q", saved.Name)
			printDetail("ID: %s", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (default: input file basename)")
	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			l, err := c.findLayout(cmd.Context(), s, args[0])
			if err != nil {
				return err
			}
			if err := s.Delete(cmd.Context(), l.ID); err != nil {
				return err
			}
			printSuccess("Deleted layout %q", l.Name)
			return nil
		},
	}
}

// shortID returns the display form of a layout ID: the first 8 characters
// for generated UUIDs, or the ID unchanged when it is shorter. The file
// backend ingests any *.json in its directory, so IDs of arbitrary length
// can show up in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findLayout resolves an ID or unambiguous ID prefix to a saved layout.
func (c *CLI) findLayout(ctx context.Context, s store.LayoutStore, id string) (store.SavedLayout, error) {
	if l, err := s.Get(ctx, id); err == nil {
		return l, nil
	}

	layouts, err := s.List(ctx)
	if err != nil {
		return store.SavedLayout{}, err
	}
	var matches []store.SavedLayout
	for _, l := range layouts {
		if strings.HasPrefix(l.ID, id) || l.Name == id {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return store.SavedLayout{}, fmt.Errorf("no saved layout matches %q", id)
	default:
		return store.SavedLayout{}, fmt.Errorf("%q is ambiguous (%d matches), use the full ID", id, len(matches))
	}
}
