package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dynamodb: ResourceNotFoundException: table inquiries missing")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Error != "An internal error occurred" || body.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	simple := NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	if got := simple.Error(); got != "INQUIRY_NOT_FOUND: Inquiry not found" {
		t.Fatalf("unexpected error string %q", got)
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
}
