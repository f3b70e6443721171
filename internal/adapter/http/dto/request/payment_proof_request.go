package request

import "mime/multipart"

// Multipart field names accepted by the upload and payment-proof routes.
const (
	FormFieldFile          = "file"
	FormFieldPaymentMethod = "paymentMethod"
	FormFieldTransactionID = "transactionId"
)

// PaymentProofForm is bound from multipart/form-data.
type PaymentProofForm struct {
	File          *multipart.FileHeader `form:"file"`
	PaymentMethod string                `form:"paymentMethod"`
	TransactionID string                `form:"transactionId"`
}
