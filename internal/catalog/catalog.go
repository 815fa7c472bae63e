package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Service is one bookable prestation. The scheduling core only ever reads
// DurationMinutes and Name; grouping and price are presentation data.
type Service struct {
	ID              string `yaml:"id" json:"id"`
	Name            string `yaml:"name" json:"name"`
	DurationMinutes int    `yaml:"duration_minutes" json:"duration_minutes"`
	Price           string `yaml:"price" json:"price"`
}

type Group struct {
	Name     string    `yaml:"name" json:"name"`
	Services []Service `yaml:"services" json:"services"`
}

// Catalog is the static service list, loaded once at startup and never
// mutated afterwards.
type Catalog struct {
	Groups []Group `yaml:"groups" json:"groups"`
}

// Default returns the built-in Dream Sourcil catalog, used when no
// catalog file is configured.
func Default() *Catalog {
	return &Catalog{
		Groups: []Group{
			{
				Name: "brows",
				Services: []Service{
					{ID: "classic", Name: "Classic Brow", DurationMinutes: 30, Price: "15€"},
					{ID: "classic_restruct", Name: "Classic Brow – Restructuration", DurationMinutes: 20, Price: "20€"},
					{ID: "henna", Name: "Henna Brow", DurationMinutes: 45, Price: "25€"},
					{ID: "henna_halal", Name: "Henna Brow – Sans Épilation (Halal Brow)", DurationMinutes: 45, Price: "30€"},
					{ID: "hybrid", Name: "Hybrid Brow", DurationMinutes: 45, Price: "30€"},
					{ID: "hybrid_tint", Name: "Hybrid Brow – Teinture hybride", DurationMinutes: 45, Price: "35€"},
					{ID: "browlift", Name: "Browlift – Restructuration", DurationMinutes: 45, Price: "50€"},
					{ID: "dream_browlift", Name: "Dream Browlift – Forfait complet", DurationMinutes: 75, Price: "60€"},
				},
			},
			{
				Name: "lashes",
				Services: []Service{
					{ID: "lashlift", Name: "Lash Lift Simple", DurationMinutes: 60, Price: "40€"},
				},
			},
		},
	}
}

// Load reads a catalog from a yaml file; an empty path yields the
// built-in default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	for _, g := range c.Groups {
		for _, s := range g.Services {
			if s.ID == "" {
				return fmt.Errorf("service %q has no id", s.Name)
			}
			if seen[s.ID] {
				return fmt.Errorf("duplicate service id %q", s.ID)
			}
			seen[s.ID] = true
			if s.DurationMinutes <= 0 {
				return fmt.Errorf("service %q has non-positive duration", s.ID)
			}
		}
	}
	return nil
}

// FindService looks a service up by id across all groups.
func (c *Catalog) FindService(id string) (Service, bool) {
	for _, g := range c.Groups {
		for _, s := range g.Services {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Service{}, false
}
