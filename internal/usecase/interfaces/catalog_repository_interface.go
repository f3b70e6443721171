package interfaces

import "mediamind_portal/internal/domain/entities"

// ICatalogRepository serves the read-only service catalog.
// Get returns ok=false for unknown ids.
type ICatalogRepository interface {
	List() []entities.Service
	Get(id string) (entities.Service, bool)
}
