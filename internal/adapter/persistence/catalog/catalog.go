package catalog

import (
	_ "embed"
	"fmt"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

type catalogFile struct {
	Services []entities.Service `yaml:"services"`
}

// YAMLCatalogRepository serves the service catalog from YAML loaded once at startup.
// It is read-only and safe for concurrent use.
type YAMLCatalogRepository struct {
	services []entities.Service
	byID     map[string]int
}

var _ interfaces.ICatalogRepository = (*YAMLCatalogRepository)(nil)

// NewEmbeddedCatalogRepository parses the catalog compiled into the binary.
func NewEmbeddedCatalogRepository() (*YAMLCatalogRepository, error) {
	return NewYAMLCatalogRepository(servicesYAML)
}

func NewYAMLCatalogRepository(data []byte) (*YAMLCatalogRepository, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[string]int, len(f.Services))
	for i, s := range f.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", s.ID)
		}
		byID[s.ID] = i
	}
	return &YAMLCatalogRepository{services: f.Services, byID: byID}, nil
}

// List returns the services in file order.
func (r *YAMLCatalogRepository) List() []entities.Service {
	out := make([]entities.Service, len(r.services))
	copy(out, r.services)
	return out
}

func (r *YAMLCatalogRepository) Get(id string) (entities.Service, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entities.Service{}, false
	}
	return r.services[i], true
}
