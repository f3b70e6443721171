package handlers

import (
	"fmt"
	"net/http"

	"mediamind_portal/internal/adapter/http/middleware"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger}
}

// DownloadInvoice godoc
// @Summary      Download the inquiry invoice as PDF
// @Tags         inquiries
// @Produce      application/pdf
// @Param        id   path      string  true  "inquiry id"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /inquiries/{id}/invoice [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	file, err := h.usecase.Generate(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
