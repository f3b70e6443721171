package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"mediamind_portal/internal/adapter/http/handlers/mocks"
	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInquiryRouter(uc usecase.IInquiryUseCase) *gin.Engine {
	h := NewInquiryHandler(uc, nil)
	r, g := newAuthedRouter()
	g.GET("/inquiries", h.ListInquiries)
	g.POST("/inquiries", h.SubmitInquiry)
	g.GET("/inquiries/:id", h.GetInquiry)
	g.PUT("/inquiries/:id", h.UpdateInquiry)
	g.DELETE("/inquiries/:id", h.CancelInquiry)
	return r
}

func sampleInquiry() entities.Inquiry {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.Inquiry{
		ID:            "A1",
		ClientID:      "C1",
		ServiceName:   "Instagram Growth",
		Status:        entities.InquiryStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusChange{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func decodeError(t *testing.T, body []byte) (string, string) {
	t.Helper()
	var e struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("invalid error body %s: %v", body, err)
	}
	return e.Error, e.Code
}

func TestInquiryHandler_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInquiryUseCase(ctrl)
	r := newInquiryRouter(uc)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/v1/inquiries"},
		{http.MethodGet, "/v1/inquiries/A1"},
		{http.MethodPut, "/v1/inquiries/A1"},
		{http.MethodDelete, "/v1/inquiries/A1"},
	} {
		w := doRequest(r, tc.method, tc.path, "", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
		if msg, _ := decodeError(t, w.Body.Bytes()); msg != "Unauthorized" {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestInquiryHandler_GetInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "C1", "A1").Return(sampleInquiry(), nil)

		w := doRequest(r, http.MethodGet, "/v1/inquiries/A1", "tok-C1", nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["_id"] != "A1" || body["id"] != "A1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("other client's inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "C2", "A1").Return(entities.Inquiry{}, usecase.ErrInquiryNotFound)

		w := doRequest(r, http.MethodGet, "/v1/inquiries/A1", "tok-C2", nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if msg, code := decodeError(t, w.Body.Bytes()); msg != "Inquiry not found" || code != "INQUIRY_NOT_FOUND" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("store failure does not leak", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "C1", "A1").Return(entities.Inquiry{}, errors.New("ResourceNotFoundException: table inquiries-prod"))

		w := doRequest(r, http.MethodGet, "/v1/inquiries/A1", "tok-C1", nil, "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "inquiries-prod") {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestInquiryHandler_ListInquiries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInquiryUseCase(ctrl)
	r := newInquiryRouter(uc)

	uc.EXPECT().List(gomock.Any(), "C1").Return([]entities.Inquiry{}, nil)

	w := doRequest(r, http.MethodGet, "/v1/inquiries", "tok-C1", nil, "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestInquiryHandler_SubmitInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		w := doRequest(r, http.MethodPost, "/v1/inquiries", "tok-C1", strings.NewReader(`{"serviceId":"x"}`), "application/json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "C1", usecase.SubmitInquiryInput{ServiceID: "tiktok-viral", PackageName: "Mega Viral", Message: "go"}).
			Return(sampleInquiry(), nil)

		body := `{"serviceId":"tiktok-viral","packageName":"Mega Viral","message":"go","clientId":"C9"}`
		w := doRequest(r, http.MethodPost, "/v1/inquiries", "tok-C1", strings.NewReader(body), "application/json")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "C1", gomock.Any()).Return(entities.Inquiry{}, usecase.ErrServiceNotFound)

		w := doRequest(r, http.MethodPost, "/v1/inquiries", "tok-C1", strings.NewReader(`{"serviceId":"nope","message":"go"}`), "application/json")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInquiryHandler_UpdateInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		w := doRequest(r, http.MethodPut, "/v1/inquiries/A1", "tok-C1", bytes.NewBufferString("{"), "application/json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("only whitelisted fields reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "C1", "A1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, p entities.InquiryPatch) (entities.Inquiry, error) {
				if p.Notes == nil || *p.Notes != "x" {
					t.Fatalf("expected notes, got %+v", p)
				}
				if p.PaymentMethod != nil || p.PaymentScreenshot != nil || p.TransactionID != nil {
					t.Fatalf("unexpected fields: %+v", p)
				}
				inq := sampleInquiry()
				inq.Notes = "x"
				return inq, nil
			},
		)

		body := `{"notes":"x","status":"completed","clientId":"C2","adminNotes":"mine now"}`
		w := doRequest(r, http.MethodPut, "/v1/inquiries/A1", "tok-C1", strings.NewReader(body), "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["notes"] != "x" || res["status"] != "pending" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "C1", "A1", gomock.Any()).Return(entities.Inquiry{}, usecase.ErrInvalidPaymentMethod)

		w := doRequest(r, http.MethodPut, "/v1/inquiries/A1", "tok-C1", strings.NewReader(`{"paymentMethod":"paypal"}`), "application/json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "C2", "A1", gomock.Any()).Return(entities.Inquiry{}, usecase.ErrInquiryNotFound)

		w := doRequest(r, http.MethodPut, "/v1/inquiries/A1", "tok-C2", strings.NewReader(`{"notes":"x"}`), "application/json")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInquiryHandler_CancelInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusOK},
		{"terminal", usecase.ErrInvalidTransition, http.StatusBadRequest},
		{"not found", usecase.ErrInquiryNotFound, http.StatusNotFound},
		{"concurrent", usecase.ErrConcurrentUpdate, http.StatusConflict},
		{"store", errors.New("db"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInquiryUseCase(ctrl)
			r := newInquiryRouter(uc)

			ret := entities.Inquiry{}
			if tc.err == nil {
				ret = sampleInquiry()
				ret.Status = entities.InquiryStatusCancelled
			}
			uc.EXPECT().Cancel(gomock.Any(), "C1", "A1").Return(ret, tc.err)

			w := doRequest(r, http.MethodDelete, "/v1/inquiries/A1", "tok-C1", nil, "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			if tc.err == nil && !strings.Contains(w.Body.String(), "Inquiry cancelled successfully") {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
