package theme

import (
	"fmt"
	"slices"
	"strings"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// DefaultName is the theme used when a dashboard does not name one.
const DefaultName = "default"

// head builds the document prefix shared by the built-in themes.
// The page chrome (nav bar, sidebar, grid cells) is styled here; the grid
// geometry itself lives in each layout skeleton.
func head(bg, fg, panel, border, accent, font string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">\n")
	b.WriteString("<title>dashgrid</title>\n<style>\n")
	b.WriteString("*{box-sizing:border-box;margin:0;padding:0}\n")
	fmt.Fprintf(&b, "body{font-family:%s;background:%s;color:%s;font-size:13px;line-height:1.5}\n", font, bg, fg)
	fmt.Fprintf(&b, ".nav{background:%s;border-bottom:1px solid %s;padding:8px 16px}\n", panel, border)
	fmt.Fprintf(&b, ".nav-title{font-size:18px;font-weight:700;color:%s}\n", accent)
	b.WriteString(".dash{display:flex;gap:12px;padding:12px}\n")
	fmt.Fprintf(&b, ".widgets{flex:0 0 300px;display:flex;flex-direction:column;gap:8px;background:%s;border:1px solid %s;border-radius:6px;padding:10px}\n", panel, border)
	b.WriteString(".grid{flex:1;display:grid;gap:12px;min-width:0}\n")
	fmt.Fprintf(&b, ".cell{background:%s;border:1px solid %s;border-radius:6px;overflow:hidden;min-height:0}\n", panel, border)
	b.WriteString(".cell:empty{display:none}\n")
	b.WriteString("</style>\n</head>\n")
	return b.String()
}

var builtins = map[string]Theme{
	DefaultName: {
		Name:       DefaultName,
		LayoutHead: head("#f6f8fa", "#24292f", "#ffffff", "#d0d7de", "#0969da", "system-ui,sans-serif"),
		ChartProperties: Properties{
			PropBackground:  "#ffffff",
			PropColor:       "#24292f",
			PropBorderColor: "#d0d7de",
			PropFontFamily:  "system-ui,sans-serif",
			PropAccent:      "#0969da",
		},
	},
	"dark": {
		Name:       "dark",
		LayoutHead: head("#0d1117", "#c9d1d9", "#161b22", "#30363d", "#58a6ff", "'JetBrains Mono',monospace"),
		ChartProperties: Properties{
			PropBackground:  "#161b22",
			PropColor:       "#c9d1d9",
			PropBorderColor: "#30363d",
			PropFontFamily:  "'JetBrains Mono',monospace",
			PropAccent:      "#58a6ff",
		},
	},
	"rapids": {
		Name:       "rapids",
		LayoutHead: head("#f2f2f2", "#1a1a1a", "#ffffff", "#c3c3c3", "#7400ff", "Roboto,sans-serif"),
		ChartProperties: Properties{
			PropBackground:  "#ffffff",
			PropColor:       "#1a1a1a",
			PropBorderColor: "#c3c3c3",
			PropFontFamily:  "Roboto,sans-serif",
			PropAccent:      "#7400ff",
		},
	},
}

// Default returns the default light theme.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// Lookup returns the built-in theme with the given name.
// An empty name selects the default theme.
func Lookup(name string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	t, ok := builtins[name]
	if !ok {
		return Theme{}, dgerrors.New(dgerrors.ErrCodeInvalidTheme,
			"unknown theme: %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	return t.WithName(t.Name), nil
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
