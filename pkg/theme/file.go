package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// LoadFile reads a theme from a TOML file.
//
// The file may set `extends` to start from a built-in theme; keys present in
// the file then override it, and `[chart_properties]` is merged key by key.
//
//	name = "ocean"
//	extends = "dark"
//
//	[chart_properties]
//	accent = "#00b4d8"
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Theme{}, dgerrors.Wrap(dgerrors.ErrCodeFileNotFound, err, "theme file %s", path)
	}
	if err != nil {
		return Theme{}, err
	}

	t, err := Parse(data)
	if err != nil {
		return Theme{}, dgerrors.Wrap(dgerrors.ErrCodeInvalidTheme, err, "theme file %s", path)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// themeFile is the on-disk shape of a theme.
type themeFile struct {
	Name            string     `toml:"name"`
	Extends         string     `toml:"extends"`
	LayoutHead      *string    `toml:"layout_head"`
	ChartProperties Properties `toml:"chart_properties"`
}

// Parse decodes TOML theme data.
func Parse(data []byte) (Theme, error) {
	var f themeFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Theme{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, dgerrors.New(dgerrors.ErrCodeInvalidTheme, "unknown theme key: %s", undecoded[0])
	}

	base := Theme{ChartProperties: Properties{}}
	if f.Extends != "" {
		if base, err = Lookup(f.Extends); err != nil {
			return Theme{}, err
		}
	}

	t := base.WithName(f.Name)
	if f.LayoutHead != nil {
		t.LayoutHead = *f.LayoutHead
	}
	for k, v := range f.ChartProperties {
		t.ChartProperties[k] = v
	}
	return t, nil
}
