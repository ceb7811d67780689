package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

type stubSuggestionService struct {
	suggestFn func(query string, max int) ports.Suggestions
}

func (s *stubSuggestionService) Suggest(query string, max int) ports.Suggestions {
	return s.suggestFn(query, max)
}

type stubGeolocationService struct {
	currentFn func(ctx context.Context) (*ports.Position, error)
	loading   bool
}

func (s *stubGeolocationService) Current(ctx context.Context) (*ports.Position, error) {
	return s.currentFn(ctx)
}

func (s *stubGeolocationService) Loading() bool {
	return s.loading
}

func TestLocationHandler_Suggest(t *testing.T) {
	stub := &stubSuggestionService{
		suggestFn: func(query string, max int) ports.Suggestions {
			if query != "san" || max != 3 {
				t.Fatalf("unexpected args: %q %d", query, max)
			}
			return ports.Suggestions{Entries: []string{"San Antonio, TX", "San Diego, CA"}, Open: true}
		},
	}
	handler := NewLocationHandler(stub, &stubGeolocationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/suggestions?q=san&limit=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Suggest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp suggestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Open || len(resp.Suggestions) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestLocationHandler_Suggest_ShortQuery(t *testing.T) {
	stub := &stubSuggestionService{
		suggestFn: func(_ string, _ int) ports.Suggestions {
			return ports.Suggestions{Entries: []string{}, Open: false}
		},
	}
	handler := NewLocationHandler(stub, &stubGeolocationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/suggestions?q=s", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Suggest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp suggestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Open || len(resp.Suggestions) != 0 {
		t.Fatalf("short query must close the dropdown: %+v", resp)
	}
}

func TestLocationHandler_Current_Success(t *testing.T) {
	stub := &stubGeolocationService{
		currentFn: func(_ context.Context) (*ports.Position, error) {
			return &ports.Position{Latitude: 40.7128, Longitude: -74.0060, Formatted: "Current location (detected)"}, nil
		},
	}
	handler := NewLocationHandler(&stubSuggestionService{}, stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/current", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp positionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Formatted != "Current location (detected)" {
		t.Fatalf("unexpected formatted label: %q", resp.Formatted)
	}
}

func TestLocationHandler_Current_SurfacesCategorizedError(t *testing.T) {
	stub := &stubGeolocationService{
		currentFn: func(_ context.Context) (*ports.Position, error) {
			return nil, domain.ErrGeoPermissionDenied
		},
	}
	handler := NewLocationHandler(&stubSuggestionService{}, stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/current", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Current(c); !errors.Is(err, domain.ErrGeoPermissionDenied) {
		t.Fatalf("expected ErrGeoPermissionDenied to surface, got %v", err)
	}
}
