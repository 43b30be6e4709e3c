package render

import (
	"fmt"
	"sort"
)

// Theme is a named background/line color pair.
type Theme struct {
	Name       string
	Background string
	Line       string
}

var themes = map[string]Theme{
	"logo":      {Name: "logo", Background: "black", Line: "cyan"},
	"cyberpunk": {Name: "cyberpunk", Background: "#0a0a0a", Line: "#ff00ff"},
	"retro":     {Name: "retro", Background: "#001100", Line: "#00ff00"},
	"minimal":   {Name: "minimal", Background: "white", Line: "black"},
	"ocean":     {Name: "ocean", Background: "#001a33", Line: "#00a8cc"},
	"sunset":    {Name: "sunset", Background: "#2d1b2e", Line: "#ff6b6b"},
}

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
