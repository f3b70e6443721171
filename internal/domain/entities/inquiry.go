package entities

import "time"

// Inquiry is a client's request for a service package.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (clientId-index): clientId
//
// ClientID is the owner back-reference and the only authorization boundary;
// it never changes after creation. StatusHistory only grows.
type Inquiry struct {
	ID            string `json:"_id"`
	ClientID      string `json:"clientId"`
	ServiceName   string `json:"serviceName"`
	PackageName   string `json:"packageName,omitempty"`
	PackagePrice  string `json:"packagePrice,omitempty"`
	Message       string `json:"message"`
	TotalAmount   string `json:"totalAmount"`
	InvoiceNumber string `json:"invoiceNumber"`

	Status        InquiryStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	PaymentScreenshot string        `json:"paymentScreenshot,omitempty"`
	PaymentMethod     PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionID     string        `json:"transactionId,omitempty"`

	Notes      string `json:"notes,omitempty"`
	AdminNotes string `json:"adminNotes,omitempty"`

	StatusHistory []StatusChange `json:"statusHistory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusChange is one entry of the append-only audit trail.
type StatusChange struct {
	Status    InquiryStatus `json:"status"`
	ChangedBy string        `json:"changedBy"`
	ChangedAt time.Time     `json:"changedAt"`
	Note      string        `json:"note,omitempty"`
}

// InquiryPatch is the client-writable update surface.
// A nil field is left untouched.
type InquiryPatch struct {
	Notes             *string
	PaymentScreenshot *string
	PaymentMethod     *string
	TransactionID     *string
}

func (p InquiryPatch) IsEmpty() bool {
	return p.Notes == nil && p.PaymentScreenshot == nil && p.PaymentMethod == nil && p.TransactionID == nil
}

// HasPaymentProof reports whether all three payment evidence fields are set.
// Partial evidence is a valid intermediate state.
func (i Inquiry) HasPaymentProof() bool {
	return i.PaymentScreenshot != "" && i.PaymentMethod != "" && i.TransactionID != ""
}

// LastStatusChange returns the most recent history entry, if any.
func (i Inquiry) LastStatusChange() (StatusChange, bool) {
	if len(i.StatusHistory) == 0 {
		return StatusChange{}, false
	}
	return i.StatusHistory[len(i.StatusHistory)-1], true
}
