package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	request "mediamind_portal/internal/adapter/http/dto/request"
	response "mediamind_portal/internal/adapter/http/dto/response"
	"mediamind_portal/internal/adapter/http/middleware"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// multipartOverhead is the slack allowed on top of the image limit for form
// boundaries and the text fields.
const multipartOverhead = 64 * 1024

type PaymentProofHandler struct {
	usecase  usecase.IPaymentProofUseCase
	maxBytes int64
	logger   *zap.Logger
}

func NewPaymentProofHandler(uc usecase.IPaymentProofUseCase, maxBytes int64, logger *zap.Logger) *PaymentProofHandler {
	if maxBytes <= 0 {
		maxBytes = usecase.DefaultMaxProofBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentProofHandler{usecase: uc, maxBytes: maxBytes, logger: logger}
}

// AttachPaymentProof godoc
// @Summary      Upload a payment screenshot and attach it to an inquiry
// @Tags         inquiries
// @Accept       multipart/form-data
// @Produce      json
// @Param        id             path      string  true  "inquiry id"
// @Param        file           formData  file    true  "payment screenshot (image, max 5MB)"
// @Param        paymentMethod  formData  string  true  "bkash, nagad, bank or other"
// @Param        transactionId  formData  string  true  "transaction id"
// @Success      200  {object}  response.InquiryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /inquiries/{id}/payment-proof [post]
func (h *PaymentProofHandler) AttachPaymentProof(c *gin.Context) {
	img, closeFn, err := h.readImage(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer closeFn()

	var form request.PaymentProofForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	inq, err := h.usecase.Attach(c.Request.Context(), middleware.ClientID(c), c.Param("id"), usecase.PaymentProofInput{
		Image:         img,
		PaymentMethod: form.PaymentMethod,
		TransactionID: form.TransactionID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inq))
}

// UploadImage godoc
// @Summary      Upload an image to the asset host
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "image, max 5MB"
// @Success      201  {object}  response.UploadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /uploads [post]
func (h *PaymentProofHandler) UploadImage(c *gin.Context) {
	img, closeFn, err := h.readImage(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer closeFn()

	url, err := h.usecase.Upload(c.Request.Context(), img)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewUploadResponse(url))
}

func (h *PaymentProofHandler) readImage(c *gin.Context) (usecase.ImageUpload, func(), error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile(request.FormFieldFile)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return usecase.ImageUpload{}, nil, usecase.ErrFileTooLarge
		}
		return usecase.ImageUpload{}, nil, usecase.ErrEmptyFile
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.ImageUpload{}, nil, err
	}
	return toImageUpload(fh, f), func() { _ = f.Close() }, nil
}

func toImageUpload(fh *multipart.FileHeader, f multipart.File) usecase.ImageUpload {
	return usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
}
