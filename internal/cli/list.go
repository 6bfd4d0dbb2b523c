package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

var listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// listCommand creates the list command and its subcommands.
func (c *CLI) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keyboards, palettes and patterns",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "keyboards",
		Aliases: []string{"keyboard", "kb"},
		Short:   "List keyboard models",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTable(os.Stdout, keyboardTable(c.catalog))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "palettes",
		Aliases: []string{"palette"},
		Short:   "List named palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTable(os.Stdout, paletteTable(c.schemes))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "List pattern variants",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTable(os.Stdout, patternTable(pattern.New()))
		},
	})
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func keyboardTable(cat *keyboard.Catalog) *table.Table {
	t := newTable("Keyboard", "Rows", "Grid", "Keys")
	for _, name := range cat.Names() {
		kb, err := cat.Lookup(name)
		if err != nil {
			continue
		}
		rows, cols := kb.Dims()
		t.Row(kb.Name, fmt.Sprint(rows), fmt.Sprintf("%dx%d", rows, cols), fmt.Sprint(kb.KeyCount()))
	}
	return t
}

func paletteTable(s *colors.Schemes) *table.Table {
	t := newTable("Palette", "Colors", "Hex")
	for _, sc := range s.All() {
		t.Row(sc.Name, swatches(sc.Colors), strings.Join(sc.Colors.Hex(), " "))
	}
	return t
}

var patternThemes = map[pattern.ID]bool{
	pattern.Splatter: true, pattern.Cracked: true, pattern.Fog: true, pattern.Scales: true,
	pattern.Slime: true, pattern.Fur: true, pattern.Blocks: true,
}

func patternTable(e *pattern.Engine) *table.Table {
	t := newTable("Pattern", "Kind")
	for _, id := range e.IDs() {
		kind := "geometric"
		switch {
		case patternThemes[id]:
			kind = "theme"
		case id == pattern.Random:
			kind = "random"
		}
		t.Row(string(id), kind)
	}
	return t
}

func writeTable(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
