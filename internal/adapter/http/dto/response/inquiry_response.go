package response

import (
	"time"

	"mediamind_portal/internal/domain/entities"
)

type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Note      string    `json:"note,omitempty"`
}

// InquiryResponse keeps the legacy "_id" key next to "id" so existing portal
// pages keep working.
type InquiryResponse struct {
	MongoID       string `json:"_id"`
	ID            string `json:"id"`
	ClientID      string `json:"clientId"`
	ServiceName   string `json:"serviceName"`
	PackageName   string `json:"packageName,omitempty"`
	PackagePrice  string `json:"packagePrice,omitempty"`
	Message       string `json:"message"`
	TotalAmount   string `json:"totalAmount"`
	InvoiceNumber string `json:"invoiceNumber"`

	Status        string                 `json:"status"`
	StatusDisplay entities.StatusDisplay `json:"statusDisplay"`
	PaymentStatus string                 `json:"paymentStatus"`

	PaymentScreenshot string `json:"paymentScreenshot,omitempty"`
	PaymentMethod     string `json:"paymentMethod,omitempty"`
	TransactionID     string `json:"transactionId,omitempty"`

	Notes      string `json:"notes,omitempty"`
	AdminNotes string `json:"adminNotes,omitempty"`

	StatusHistory []StatusChangeResponse `json:"statusHistory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse mirrors the old asset-host reply: the URL twice, once as a
// one-element "data" array.
type UploadResponse struct {
	URL  string   `json:"url"`
	Data []string `json:"data"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	history := make([]StatusChangeResponse, 0, len(i.StatusHistory))
	for _, c := range i.StatusHistory {
		history = append(history, StatusChangeResponse{
			Status:    string(c.Status),
			ChangedBy: c.ChangedBy,
			ChangedAt: c.ChangedAt,
			Note:      c.Note,
		})
	}

	return InquiryResponse{
		MongoID:           i.ID,
		ID:                i.ID,
		ClientID:          i.ClientID,
		ServiceName:       i.ServiceName,
		PackageName:       i.PackageName,
		PackagePrice:      i.PackagePrice,
		Message:           i.Message,
		TotalAmount:       i.TotalAmount,
		InvoiceNumber:     i.InvoiceNumber,
		Status:            string(i.Status),
		StatusDisplay:     i.Status.Display(),
		PaymentStatus:     string(i.PaymentStatus),
		PaymentScreenshot: i.PaymentScreenshot,
		PaymentMethod:     string(i.PaymentMethod),
		TransactionID:     i.TransactionID,
		Notes:             i.Notes,
		AdminNotes:        i.AdminNotes,
		StatusHistory:     history,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func FromInquiries(items []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInquiry(i))
	}
	return out
}

func NewUploadResponse(url string) UploadResponse {
	return UploadResponse{URL: url, Data: []string{url}}
}
