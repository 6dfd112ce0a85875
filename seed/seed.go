package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"overol-freefly/models"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the seed data inserted at startup
type Catalog struct {
	FabricTypes []models.FabricType `yaml:"fabric_types"`
	Colors      []models.Color      `yaml:"colors"`
}

// Default returns the built-in seed catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Parse decodes and validates a YAML seed catalog
func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	if err := validate(&catalog); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}
	return &catalog, nil
}

func validate(catalog *Catalog) error {
	seen := make(map[string]bool)
	for _, ft := range catalog.FabricTypes {
		if ft.ID == "" {
			return fmt.Errorf("fabric type without id")
		}
		if seen[ft.ID] {
			return fmt.Errorf("duplicate fabric type id %s", ft.ID)
		}
		seen[ft.ID] = true
	}

	seen = make(map[string]bool)
	for _, c := range catalog.Colors {
		if c.ID == "" {
			return fmt.Errorf("color without id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate color id %s", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Reconcile returns the records whose id is not in existingIDs, in seed order
func Reconcile[T any](existingIDs []string, records []T, id func(T) string) []T {
	existing := make(map[string]struct{}, len(existingIDs))
	for _, existingID := range existingIDs {
		existing[existingID] = struct{}{}
	}

	missing := make([]T, 0, len(records))
	for _, record := range records {
		if _, ok := existing[id(record)]; ok {
			continue
		}
		missing = append(missing, record)
	}
	return missing
}

// FabricTypeID and ColorID are the key functions used with Reconcile
func FabricTypeID(ft models.FabricType) string { return ft.ID }
func ColorID(c models.Color) string            { return c.ID }
