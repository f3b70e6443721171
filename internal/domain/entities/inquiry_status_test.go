package entities

import (
	"testing"
	"time"
)

func TestInquiryStatus_EveryStatusHasDisplay(t *testing.T) {
	if len(AllInquiryStatuses) != len(statusDisplays) {
		t.Fatalf("display table has %d entries for %d statuses", len(statusDisplays), len(AllInquiryStatuses))
	}
	for _, s := range AllInquiryStatuses {
		if _, ok := statusDisplays[s]; !ok {
			t.Fatalf("status %q has no display entry", s)
		}
		if !s.IsValid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
}

func TestInquiryStatus_IsTerminal(t *testing.T) {
	terminal := map[InquiryStatus]bool{
		InquiryStatusCompleted: true,
		InquiryStatusCancelled: true,
	}
	for _, s := range AllInquiryStatuses {
		if s.IsTerminal() != terminal[s] {
			t.Fatalf("IsTerminal(%q) = %v", s, s.IsTerminal())
		}
	}
}

func TestInquiryStatus_DisplayFallback(t *testing.T) {
	d := InquiryStatus("archived").Display()
	if d.Label != "archived" || d.Color != "gray" {
		t.Fatalf("unexpected fallback display: %+v", d)
	}
	if InquiryStatus("archived").IsValid() {
		t.Fatalf("unknown status must not be valid")
	}
	if !InquiryStatusInProgress.Display().Spin {
		t.Fatalf("in-progress badge should spin")
	}
}

func TestPaymentMethod_IsValid(t *testing.T) {
	for _, m := range []PaymentMethod{"bkash", "nagad", "bank", "other"} {
		if !m.IsValid() {
			t.Fatalf("expected %q valid", m)
		}
	}
	for _, m := range []PaymentMethod{"", "paypal", "BKASH"} {
		if m.IsValid() {
			t.Fatalf("expected %q invalid", m)
		}
	}
}

func TestInquiry_Helpers(t *testing.T) {
	var inq Inquiry
	if _, ok := inq.LastStatusChange(); ok {
		t.Fatalf("empty history has no last change")
	}
	if inq.HasPaymentProof() {
		t.Fatalf("no proof expected")
	}

	now := time.Now().UTC()
	inq.StatusHistory = []StatusChange{
		{Status: InquiryStatusPending, ChangedAt: now},
		{Status: InquiryStatusApproved, ChangedAt: now.Add(time.Minute)},
	}
	last, ok := inq.LastStatusChange()
	if !ok || last.Status != InquiryStatusApproved {
		t.Fatalf("unexpected last change: %+v", last)
	}

	inq.PaymentScreenshot = "https://x/y.png"
	inq.PaymentMethod = PaymentMethodBkash
	if inq.HasPaymentProof() {
		t.Fatalf("partial proof must not count as complete")
	}
	inq.TransactionID = "TXN1"
	if !inq.HasPaymentProof() {
		t.Fatalf("expected complete proof")
	}

	if !(InquiryPatch{}).IsEmpty() {
		t.Fatalf("zero patch should be empty")
	}
	notes := "x"
	if (InquiryPatch{Notes: &notes}).IsEmpty() {
		t.Fatalf("patch with notes is not empty")
	}
}
