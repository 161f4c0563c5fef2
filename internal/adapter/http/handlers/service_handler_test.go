package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"faturas/internal/adapter/http/handlers/mocks"
	"faturas/internal/domain/entities"
	"faturas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		body, _ := json.Marshal(map[string]string{"issuer": "EDP"})
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r := gin.New()
		r.POST("/v1/services", h.CreateService)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing issuer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewReader([]byte("{}")))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.POST("/v1/services", h.CreateService)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "user-1", "EDP", entities.CategoryEletricidade, "CT-1").
			Return(entities.Service{ID: "svc-1", UserID: "user-1", Issuer: "EDP"}, nil)

		body, _ := json.Marshal(map[string]string{
			"issuer":          "EDP",
			"category":        "Eletricidade",
			"contract_number": "CT-1",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.POST("/v1/services", h.CreateService)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if got["id"] != "svc-1" || got["issuer"] != "EDP" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "svc-9").
			Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-9", nil)
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("access denied is hidden as 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "svc-1").
			Return(entities.Service{}, usecase.ErrServiceAccessDenied)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler_SetAutopay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().SetAutopay(gomock.Any(), "user-1", "svc-1", true, gomock.Any()).
			Return(entities.Service{}, usecase.ErrInvalidAutopayLimit)

		body, _ := json.Marshal(map[string]interface{}{"enabled": true, "limit_cents": -1})
		req := httptest.NewRequest(http.MethodPatch, "/v1/services/svc-1/autopay", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.PATCH("/v1/services/:id/autopay", h.SetAutopay)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		limit := int64(5000)
		uc.EXPECT().SetAutopay(gomock.Any(), "user-1", "svc-1", true, gomock.Any()).
			Return(entities.Service{ID: "svc-1", Autopay: true, AutopayLimitCents: &limit}, nil)

		body, _ := json.Marshal(map[string]interface{}{"enabled": true, "limit_cents": 5000})
		req := httptest.NewRequest(http.MethodPatch, "/v1/services/svc-1/autopay", bytes.NewReader(body))
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r := gin.New()
		r.PATCH("/v1/services/:id/autopay", h.SetAutopay)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if got["autopay"] != true || got["autopay_limit_cents"] != float64(5000) {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}
