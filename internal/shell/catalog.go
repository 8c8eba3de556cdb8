package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"uconv/internal/units"
)

// UnitEntry describes one unit in a catalog listing.
type UnitEntry struct {
	Name     string   `yaml:"name" json:"name"`
	Singular string   `yaml:"singular" json:"singular"`
	Plural   string   `yaml:"plural" json:"plural"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// FamilyEntry groups the catalog listing of one family.
type FamilyEntry struct {
	Family string      `yaml:"family" json:"family"`
	Base   string      `yaml:"base" json:"base"`
	Units  []UnitEntry `yaml:"units" json:"units"`
}

// Catalog lists the registry's units grouped by family. No families means all of them.
func Catalog(r *units.Registry, families ...units.Family) []FamilyEntry {
	if len(families) == 0 {
		families = units.Families
	}

	entries := make([]FamilyEntry, 0, len(families))
	for _, f := range families {
		entry := FamilyEntry{Family: f.String()}
		for _, u := range r.ByFamily(f) {
			if u.ToBase(1) == 1 && u.FromBase(1) == 1 && entry.Base == "" {
				entry.Base = u.Name()
			}
			entry.Units = append(entry.Units, UnitEntry{
				Name:     u.Name(),
				Singular: u.Singular(),
				Plural:   u.Plural(),
				Aliases:  u.Aliases(),
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

// WriteCatalog encodes a catalog listing as "yaml" or "json".
func WriteCatalog(w io.Writer, entries []FamilyEntry, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown catalog format %q (expected text, yaml or json)", format)
	}
}

// ParseFamilies resolves family names given as listing filters.
func ParseFamilies(names []string) ([]units.Family, error) {
	var families []units.Family
	for _, name := range names {
		f, ok := units.ParseFamily(name)
		if !ok {
			return nil, fmt.Errorf("unknown family %q", name)
		}
		families = append(families, f)
	}
	return families, nil
}
