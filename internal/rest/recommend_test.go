package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"africahub/domain"

	"github.com/labstack/echo/v4"
)

type fakeRecommendService struct {
	startCount int
	startCfg   domain.StreamConfig
	startErr   error
	stopped    map[string]bool
}

func (f *fakeRecommendService) StartStream(ctx context.Context, userID, insuranceType string, cfg domain.StreamConfig) (int, domain.StreamConfig, error) {
	if f.startErr != nil {
		return 0, cfg, f.startErr
	}
	return f.startCount, f.startCfg, nil
}

func (f *fakeRecommendService) StopStream(userID string) bool {
	return f.stopped[userID]
}

func postStream(t *testing.T, handler *RecommendHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/stream", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.StartStream(c); err != nil {
		t.Fatalf("StartStream returned error: %v", err)
	}
	return rec
}

func TestStartStreamHandlerSuccess(t *testing.T) {
	svc := &fakeRecommendService{
		startCount: 5,
		startCfg:   domain.StreamConfig{BatchSize: 5, RefreshInterval: 30, EnableRealTime: true},
	}
	handler := NewRecommendHandler(svc)

	body := `{"user_id":"u1","insurance_type":"auto","stream_config":{"batch_size":5,"refresh_interval":30,"enable_real_time":true}}`
	rec := postStream(t, handler, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp StreamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.InitialRecommendations != 5 {
		t.Errorf("initial_recommendations = %d, want 5", resp.InitialRecommendations)
	}
	if resp.StreamConfig.BatchSize != 5 || resp.StreamConfig.RefreshInterval != 30 {
		t.Errorf("stream_config = %+v, want the normalized 5/30", resp.StreamConfig)
	}
}

func TestStartStreamHandlerValidation(t *testing.T) {
	handler := NewRecommendHandler(&fakeRecommendService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing user id", `{"insurance_type":"auto"}`},
		{"missing insurance type", `{"user_id":"u1"}`},
		{"negative batch size", `{"user_id":"u1","insurance_type":"auto","stream_config":{"batch_size":-1}}`},
		{"oversized batch", `{"user_id":"u1","insurance_type":"auto","stream_config":{"batch_size":51}}`},
		{"malformed json", `{"user_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postStream(t, handler, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestStartStreamHandlerServiceFailure(t *testing.T) {
	handler := NewRecommendHandler(&fakeRecommendService{
		startErr: errors.New("candidate store unreachable"),
	})

	body := `{"user_id":"u1","insurance_type":"auto"}`
	rec := postStream(t, handler, body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["error"] == "" {
		t.Error(`500 body missing the "error" field`)
	}
}

func TestStopStreamHandler(t *testing.T) {
	handler := NewRecommendHandler(&fakeRecommendService{
		stopped: map[string]bool{"u1": true},
	})

	tests := []struct {
		name     string
		userID   string
		wantCode int
	}{
		{"existing stream", "u1", http.StatusOK},
		{"unknown user", "u2", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/v1/recommendations/stream/:user_id")
			c.SetParamNames("user_id")
			c.SetParamValues(tt.userID)

			if err := handler.StopStream(c); err != nil {
				t.Fatalf("StopStream returned error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
