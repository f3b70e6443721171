package entities

// InquiryStatus is the lifecycle state of an inquiry.
//
// The set is closed: every value must have an entry in statusDisplays.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusApproved   InquiryStatus = "approved"
	InquiryStatusPaid       InquiryStatus = "paid"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusCompleted  InquiryStatus = "completed"
	InquiryStatusCancelled  InquiryStatus = "cancelled"
)

// AllInquiryStatuses lists every status in lifecycle order.
var AllInquiryStatuses = []InquiryStatus{
	InquiryStatusPending,
	InquiryStatusApproved,
	InquiryStatusPaid,
	InquiryStatusInProgress,
	InquiryStatusCompleted,
	InquiryStatusCancelled,
}

func (s InquiryStatus) IsValid() bool {
	_, ok := statusDisplays[s]
	return ok
}

// IsTerminal reports whether a client may no longer change the status.
func (s InquiryStatus) IsTerminal() bool {
	return s == InquiryStatusCompleted || s == InquiryStatusCancelled
}

// StatusDisplay is how the portal renders a status badge.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Spin  bool   `json:"spin,omitempty"`
}

var statusDisplays = map[InquiryStatus]StatusDisplay{
	InquiryStatusPending:    {Label: "PENDING", Color: "yellow", Icon: "clock"},
	InquiryStatusApproved:   {Label: "APPROVED", Color: "blue", Icon: "check-circle"},
	InquiryStatusPaid:       {Label: "PAID", Color: "green", Icon: "dollar-sign"},
	InquiryStatusInProgress: {Label: "IN PROGRESS", Color: "purple", Icon: "loader", Spin: true},
	InquiryStatusCompleted:  {Label: "COMPLETED", Color: "emerald", Icon: "check-circle"},
	InquiryStatusCancelled:  {Label: "CANCELLED", Color: "red", Icon: "x-circle"},
}

// Display returns the badge for s. Unknown values (legacy rows) fall back to a neutral badge.
func (s InquiryStatus) Display() StatusDisplay {
	if d, ok := statusDisplays[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), Color: "gray", Icon: "clock"}
}

// PaymentStatus is independent of InquiryStatus and is only written by staff.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// PaymentMethod is how the client says they paid.
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodOther PaymentMethod = "other"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodBank, PaymentMethodOther:
		return true
	}
	return false
}
