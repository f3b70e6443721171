package routes

import (
	"mediamind_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries   = "/inquiries"
	PathUploads     = "/uploads"
	PathServices    = "/services"
	PathSiteContent = "/site-content"
)

func addInquiryRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler, proofHandler *handlers.PaymentProofHandler, invoiceHandler *handlers.InvoiceHandler) {
	inquiries := rg.Group(PathInquiries)
	{
		inquiries.GET("", inquiryHandler.ListInquiries)
		inquiries.POST("", inquiryHandler.SubmitInquiry)
		inquiries.GET("/:id", inquiryHandler.GetInquiry)
		inquiries.PUT("/:id", inquiryHandler.UpdateInquiry)
		inquiries.DELETE("/:id", inquiryHandler.CancelInquiry)
		inquiries.POST("/:id/payment-proof", proofHandler.AttachPaymentProof)
		inquiries.GET("/:id/invoice", invoiceHandler.DownloadInvoice)
	}

	rg.POST(PathUploads, proofHandler.UploadImage)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)
	rg.GET(PathServices+"/:id", catalogHandler.GetService)
	rg.GET(PathSiteContent, catalogHandler.GetSiteContent)
}
