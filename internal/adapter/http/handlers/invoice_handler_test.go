package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"faturas/internal/adapter/http/handlers/mocks"
	"faturas/internal/domain/entities"
	"faturas/internal/usecase"
	"faturas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func parseBody(t *testing.T) []byte {
	t.Helper()
	data := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
	body, err := json.Marshal(map[string]string{
		"pdfData":  "data:application/pdf;base64," + data,
		"fileName": "fatura.pdf",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return body
}

func TestInvoiceHandler_ParseInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices/parse", h.ParseInvoice)
		return r
	}

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader(parseBody(t)))
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader([]byte("{")))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid base64 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		body, _ := json.Marshal(map[string]string{"pdfData": "data:application/pdf;base64,%%%"})
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		uc.EXPECT().ParseAndStore(gomock.Any(), "user-1", gomock.Any(), "fatura.pdf").
			Return(usecase.ParseResult{}, interfaces.ErrExtractionRateLimited)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader(parseBody(t)))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("payment required maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		uc.EXPECT().ParseAndStore(gomock.Any(), "user-1", gomock.Any(), "fatura.pdf").
			Return(usecase.ParseResult{}, interfaces.ErrExtractionPaymentRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader(parseBody(t)))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		result := usecase.ParseResult{
			Extracted: entities.ExtractedInvoice{
				Issuer:   "EDP Comercial",
				Category: entities.CategoryEletricidade,
			},
			Service: entities.Service{ID: "svc-1"},
			Invoice: entities.Invoice{
				ID:          "inv-1",
				ServiceID:   "svc-1",
				AmountCents: 4523,
				DueDate:     due,
				ParsedFields: map[string]string{
					entities.ParsedFieldMultibancoEntity: "12345",
				},
			},
			ServiceCreated: true,
		}

		uc.EXPECT().ParseAndStore(gomock.Any(), "user-1", gomock.Any(), "fatura.pdf").Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/parse", bytes.NewReader(parseBody(t)))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if got["issuer"] != "EDP Comercial" || got["service_id"] != "svc-1" || got["invoice_id"] != "inv-1" {
			t.Fatalf("unexpected response: %v", got)
		}
		if got["amount_cents"] != float64(4523) || got["due_date"] != "2026-09-15" {
			t.Fatalf("unexpected response: %v", got)
		}
		if got["service_created"] != true {
			t.Fatalf("expected service_created, got %v", got)
		}
	})
}

func TestInvoiceHandler_Categorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		uc.EXPECT().Categorize(gomock.Any(), "EDP Comercial", gomock.Any()).
			Return(usecase.CategorizeResult{Category: entities.CategoryEletricidade, Description: "EDP Comercial - Eletricidade"}, nil)

		body, _ := json.Marshal(map[string]string{"issuer": "EDP Comercial"})
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/categorize", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r := gin.New()
		r.POST("/v1/invoices/categorize", h.Categorize)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if got["category"] != "Eletricidade" {
			t.Fatalf("unexpected response: %v", got)
		}
	})

	t.Run("missing issuer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParseInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/categorize", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		r := gin.New()
		r.POST("/v1/invoices/categorize", h.Categorize)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(nil, uc)

		uc.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{{ID: "inv-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(nil, uc)

		uc.EXPECT().ListByService(gomock.Any(), "user-1", "svc-1").Return([]entities.Invoice{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?service_id=svc-1", nil)
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown service maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(nil, uc)

		uc.EXPECT().ListByService(gomock.Any(), "user-1", "svc-9").Return(nil, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?service_id=svc-9", nil)
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_UpdateInvoiceStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("transition conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(nil, uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "inv-1", entities.InvoiceStatusPaid).
			Return(entities.Invoice{}, usecase.ErrInvoiceStatusTransition)

		body, _ := json.Marshal(map[string]string{"status": "paid"})
		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.PATCH("/v1/invoices/:id/status", h.UpdateInvoiceStatus)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(nil, uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "inv-1", entities.InvoiceStatusPaid).
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		body, _ := json.Marshal(map[string]string{"status": "paid"})
		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.PATCH("/v1/invoices/:id/status", h.UpdateInvoiceStatus)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_DashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(nil, uc)

	next := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().DashboardStats(gomock.Any(), "user-1").Return(usecase.DashboardStats{
		TotalDueCents: 4000,
		OverdueCount:  1,
		NextDueDate:   &next,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	req.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/v1/dashboard/stats", h.DashboardStats)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if got["total_due_cents"] != float64(4000) || got["next_due_date"] != "2026-09-20" {
		t.Fatalf("unexpected response: %v", got)
	}
}
