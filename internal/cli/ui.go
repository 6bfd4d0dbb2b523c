package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/design"
)

// Terminal colors (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleHighlight marks names the user can pass back as flags.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim is for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue is for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleWarning is for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
	iconSwatch  = "  "
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(StyleWarning.Render(iconWarning + " " + fmt.Sprintf(format, args...)))
}

// printFile prints an output file line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printField prints a labeled value.
func printField(label, value string) {
	fmt.Println(styleLabel.Render(label) + " " + StyleValue.Render(value))
}

// printHint suggests a follow-up command.
func printHint(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printDesign prints a summary of a generated design.
func printDesign(d design.Design) {
	printField("Keyboard", d.Keyboard)
	if d.Resolved != "" {
		pat := string(d.Resolved)
		if d.Pattern != d.Resolved && d.Pattern != "" {
			pat += StyleDim.Render(fmt.Sprintf(" (requested %s)", d.Pattern))
		}
		printField("Pattern", pat)
		printField("Seed", fmt.Sprint(d.Seed))
	}
	if len(d.Palette) > 0 {
		printField("Palette", swatches(d.Palette))
	}
}

// swatch renders c as a small colored block.
func swatch(c colors.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(iconSwatch)
}

// swatches renders every color of p side by side.
func swatches(p colors.Palette) string {
	var b strings.Builder
	for _, c := range p {
		b.WriteString(swatch(c))
	}
	return b.String()
}
