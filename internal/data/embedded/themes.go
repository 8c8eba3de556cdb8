// Package embedded provides access to data files compiled into the uconv binary.
package embedded

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

// ThemesFS contains the embedded theme YAML files.
//
//go:embed themes/*.yaml
var ThemesFS embed.FS

// ThemeData returns the YAML source of a named theme.
func ThemeData(name string) ([]byte, error) {
	data, err := ThemesFS.ReadFile(path.Join("themes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return data, nil
}

// ThemeNames lists the embedded themes, sorted.
func ThemeNames() []string {
	entries, err := ThemesFS.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
