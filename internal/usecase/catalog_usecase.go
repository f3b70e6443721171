package usecase

import (
	"errors"
	"strings"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase/interfaces"
)

var ErrServiceNotFound = errors.New("service not found")

// ICatalogUseCase serves the public service catalog.

type ICatalogUseCase interface {
	List() []entities.Service
	Get(id string) (entities.Service, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) List() []entities.Service {
	return u.repo.List()
}

func (u *CatalogUseCase) Get(id string) (entities.Service, error) {
	svc, ok := u.repo.Get(strings.TrimSpace(id))
	if !ok {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}
