package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mediamind_portal/internal/adapter/http/handlers"
	"mediamind_portal/internal/adapter/http/handlers/mocks"
	"mediamind_portal/internal/config"
	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type denyAll struct{}

func (denyAll) Verify(string) (auth.ClientIdentity, error) {
	return auth.ClientIdentity{}, auth.ErrUnauthenticated
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	catalogUC := mocks.NewMockICatalogUseCase(ctrl)

	h := Handlers{
		Inquiry:      handlers.NewInquiryHandler(mocks.NewMockIInquiryUseCase(ctrl), nil),
		PaymentProof: handlers.NewPaymentProofHandler(mocks.NewMockIPaymentProofUseCase(ctrl), 0, nil),
		Invoice:      handlers.NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), nil),
		Catalog:      handlers.NewCatalogHandler(catalogUC, config.SiteConfig{Title: "MediaMind"}, nil),
	}
	return NewRouter(zap.NewNop(), denyAll{}, "client_token", h), catalogUC
}

func TestNewRouter(t *testing.T) {
	r, catalogUC := newTestRouter(t)
	catalogUC.EXPECT().List().Return([]entities.Service{})

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/v1/services", http.StatusOK},
		{http.MethodGet, "/v1/site-content", http.StatusOK},
		{http.MethodGet, "/v1/inquiries", http.StatusUnauthorized},
		{http.MethodPost, "/v1/inquiries", http.StatusUnauthorized},
		{http.MethodGet, "/v1/inquiries/A1", http.StatusUnauthorized},
		{http.MethodPut, "/v1/inquiries/A1", http.StatusUnauthorized},
		{http.MethodDelete, "/v1/inquiries/A1", http.StatusUnauthorized},
		{http.MethodPost, "/v1/inquiries/A1/payment-proof", http.StatusUnauthorized},
		{http.MethodGet, "/v1/inquiries/A1/invoice", http.StatusUnauthorized},
		{http.MethodPost, "/v1/uploads", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
		if w.Header().Get("X-Request-Id") == "" {
			t.Fatalf("%s %s: missing request id header", tc.method, tc.path)
		}
	}
}
