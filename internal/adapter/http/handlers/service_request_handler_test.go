package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plumbing_portal/internal/adapter/http/dto/response"
	"plumbing_portal/internal/adapter/http/handlers/mocks"
	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase"
	"plumbing_portal/internal/usecase/interfaces"
	"plumbing_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validPayload = `{
  "customer_info": {"full_name": "Jane Doe", "email": "jane@example.com", "phone": "555-0100", "address": "12 Elm St"},
  "service_details": {"category": "Repair", "type": "Leaky Faucet", "urgency": "Need Soon", "description": "Drips", "contact_preference": "Anytime"},
  "photo_uploaded": true,
  "agree_terms": true
}`

func postServiceRequest(t *testing.T, h *ServiceRequestHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/v1/service-requests", h.CreateServiceRequest)

	req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var e pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return e
}

func TestServiceRequestHandler_CreateServiceRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceRequestHandler(mocks.NewMockIIntakeUseCase(ctrl), nil)

		w := postServiceRequest(t, h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		at := time.Date(2024, 1, 31, 9, 45, 0, 0, time.UTC)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), true).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ bool) (entities.ServiceRequest, error) {
				if r.ServiceDetails.Type != "Leaky Faucet" || !r.PhotoUploaded {
					t.Fatalf("unexpected entity %+v", r)
				}
				r.PreliminaryPriceRange = "$75 - $250"
				return r.Stamp(at), nil
			})

		w := postServiceRequest(t, h, validPayload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.ServiceRequestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.RequestID != "REQ20240131094500" || res.PreliminaryPriceRange != "$75 - $250" {
			t.Fatalf("unexpected response %+v", res)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			wantCode string
			status   int
		}{
			{"missing fields", fmt.Errorf("%w: email", usecase.ErrMissingRequiredFields), "MISSING_REQUIRED_FIELDS", http.StatusBadRequest},
			{"unknown service", usecase.ErrUnknownServiceType, "INVALID_SERVICE_SELECTION", http.StatusBadRequest},
			{"invalid urgency", usecase.ErrInvalidUrgency, "INVALID_SERVICE_SELECTION", http.StatusBadRequest},
			{"corrupt store", interfaces.ErrStoreCorrupt, "STORE_CORRUPT", http.StatusInternalServerError},
			{"unexpected", errors.New("disk full"), "INTERNAL_ERROR", http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIIntakeUseCase(ctrl)
				h := NewServiceRequestHandler(uc, nil)

				uc.EXPECT().Submit(gomock.Any(), gomock.Any(), true).Return(entities.ServiceRequest{}, tc.err)

				w := postServiceRequest(t, h, validPayload)
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				if got := decodeHTTPError(t, w); got.Code != tc.wantCode {
					t.Fatalf("expected code %s, got %s", tc.wantCode, got.Code)
				}
			})
		}
	})

	t.Run("missing fields message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), false).Return(entities.ServiceRequest{}, usecase.ErrMissingRequiredFields)

		w := postServiceRequest(t, h, `{"customer_info": {"full_name": "Jane"}}`)
		if got := decodeHTTPError(t, w); got.Message != usecase.MissingFieldsMessage {
			t.Fatalf("unexpected message %q", got.Message)
		}
	})
}
