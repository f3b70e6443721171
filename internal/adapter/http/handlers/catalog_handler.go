package handlers

import (
	"net/http"

	response "mediamind_portal/internal/adapter/http/dto/response"
	"mediamind_portal/internal/config"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public, unauthenticated content routes.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	site    config.SiteConfig
	logger  *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, site config.SiteConfig, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{usecase: uc, site: site, logger: logger}
}

// ListServices godoc
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.ServiceSummary
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.usecase.List()))
}

// GetService godoc
// @Summary      Get a catalog service with its packages
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "service id"
// @Success      200  {object}  entities.Service
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetSiteContent godoc
// @Summary      Site copy (title, subtitle, tagline, copyright)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.SiteContentResponse
// @Router       /site-content [get]
func (h *CatalogHandler) GetSiteContent(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSiteConfig(h.site))
}
