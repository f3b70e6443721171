package handlers

import (
	"net/http"

	request "mediamind_portal/internal/adapter/http/dto/request"
	response "mediamind_portal/internal/adapter/http/dto/response"
	"mediamind_portal/internal/adapter/http/middleware"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves the authenticated inquiry routes.
//
// Every route runs behind middleware.SessionAuth, so the client id is always
// present and comes from the verified session, never from the request body.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
	logger  *zap.Logger
}

func NewInquiryHandler(uc usecase.IInquiryUseCase, logger *zap.Logger) *InquiryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryHandler{usecase: uc, logger: logger}
}

// ListInquiries godoc
// @Summary      List the caller's inquiries
// @Tags         inquiries
// @Produce      json
// @Success      200  {array}   response.InquiryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInquiries(items))
}

// SubmitInquiry godoc
// @Summary      Submit a new inquiry for a catalog service
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitInquiryRequest  true  "inquiry"
// @Success      201   {object}  response.InquiryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /inquiries [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var payload request.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	inq, err := h.usecase.Submit(c.Request.Context(), middleware.ClientID(c), payload.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInquiry(inq))
}

// GetInquiry godoc
// @Summary      Get one of the caller's inquiries
// @Tags         inquiries
// @Produce      json
// @Param        id   path      string  true  "inquiry id"
// @Success      200  {object}  response.InquiryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /inquiries/{id} [get]
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inq, err := h.usecase.Get(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inq))
}

// UpdateInquiry godoc
// @Summary      Update notes and payment proof fields
// @Description  Only notes, paymentScreenshot, paymentMethod and transactionId are writable. Other keys are ignored.
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "inquiry id"
// @Param        body  body      request.UpdateInquiryRequest  true  "fields to change"
// @Success      200   {object}  response.InquiryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /inquiries/{id} [put]
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	var payload request.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	inq, err := h.usecase.Update(c.Request.Context(), middleware.ClientID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inq))
}

// CancelInquiry godoc
// @Summary      Cancel an inquiry
// @Tags         inquiries
// @Produce      json
// @Param        id   path      string  true  "inquiry id"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /inquiries/{id} [delete]
func (h *InquiryHandler) CancelInquiry(c *gin.Context) {
	if _, err := h.usecase.Cancel(c.Request.Context(), middleware.ClientID(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Inquiry cancelled successfully"})
}
