package tui

import "github.com/charmbracelet/lipgloss"

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// GetPalette returns the named palette and whether it exists.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Styles rebuilt by SetTheme. Grouped here so every view reads from the
// same set.
var (
	titleStyle          lipgloss.Style
	headerStyle         lipgloss.Style
	footerStyle         lipgloss.Style
	normalStyle         lipgloss.Style
	selectedStyle       lipgloss.Style
	selectedBorderStyle lipgloss.Style
	emailStyle          lipgloss.Style
	postTagStyle        lipgloss.Style
	bodyStyle           lipgloss.Style
	mutedStyle          lipgloss.Style
	activeSortStyle     lipgloss.Style
	errorStyle          lipgloss.Style
	errorBoxStyle       lipgloss.Style
	searchPromptStyle   lipgloss.Style
	helpBoxStyle        lipgloss.Style
	helpKeyStyle        lipgloss.Style
	profileLabelStyle   lipgloss.Style
	profileValueStyle   lipgloss.Style
	profileBoxStyle     lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme rebuilds the package styles from a palette.
func SetTheme(p Palette) {
	titleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(p.Muted)
	normalStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	selectedStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	selectedBorderStyle = lipgloss.NewStyle().Foreground(p.Primary)
	emailStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	postTagStyle = lipgloss.NewStyle().Foreground(p.Warning)
	bodyStyle = lipgloss.NewStyle().Foreground(p.Muted)
	mutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	activeSortStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	errorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(1, 2)
	searchPromptStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	helpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	helpKeyStyle = lipgloss.NewStyle().Foreground(p.Primary)
	profileLabelStyle = lipgloss.NewStyle().Foreground(p.Muted).Width(10)
	profileValueStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	profileBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
}
