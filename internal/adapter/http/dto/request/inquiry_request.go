package request

import (
	"strings"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase"
)

// UpdateInquiryRequest is the client-writable subset of an inquiry.
//
// Absent or null fields stay untouched. Unknown keys (status, clientId,
// adminNotes, ...) are dropped by the decoder and never reach the store.
type UpdateInquiryRequest struct {
	Notes             *string `json:"notes"`
	PaymentScreenshot *string `json:"paymentScreenshot"`
	PaymentMethod     *string `json:"paymentMethod"`
	TransactionID     *string `json:"transactionId"`
}

func (r UpdateInquiryRequest) ToPatch() entities.InquiryPatch {
	return entities.InquiryPatch{
		Notes:             r.Notes,
		PaymentScreenshot: r.PaymentScreenshot,
		PaymentMethod:     r.PaymentMethod,
		TransactionID:     r.TransactionID,
	}
}

type SubmitInquiryRequest struct {
	ServiceID   string `json:"serviceId" binding:"required"`
	PackageName string `json:"packageName"`
	Message     string `json:"message" binding:"required"`
}

func (r SubmitInquiryRequest) ToInput() usecase.SubmitInquiryInput {
	return usecase.SubmitInquiryInput{
		ServiceID:   strings.TrimSpace(r.ServiceID),
		PackageName: strings.TrimSpace(r.PackageName),
		Message:     r.Message,
	}
}
