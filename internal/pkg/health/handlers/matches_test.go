package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

func TestHandleMatches(t *testing.T) {
	SetGetMatchesFunc(func() []models.DisplayMatch {
		return []models.DisplayMatch{
			{ID: 1, Home: "A", Away: "B", League: "L1", Time: "20:45", Status: models.StatusLive, Minute: "10'", Score: "1-0"},
		}
	})
	defer SetGetMatchesFunc(nil)

	rec := httptest.NewRecorder()
	HandleMatches(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Matches []models.DisplayMatch `json:"matches"`
		Meta    struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Meta.Count != 1 || len(body.Matches) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Matches[0].Score != "1-0" {
		t.Errorf("score = %q", body.Matches[0].Score)
	}
	if rec.Header().Get("X-Matches-Count") != "1" {
		t.Errorf("X-Matches-Count = %q", rec.Header().Get("X-Matches-Count"))
	}
}

func TestHandleMatchesNoFunc(t *testing.T) {
	SetGetMatchesFunc(nil)

	rec := httptest.NewRecorder()
	HandleMatches(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Matches []models.DisplayMatch `json:"matches"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Matches) != 0 {
		t.Errorf("expected empty matches, got %d", len(body.Matches))
	}
}

func TestHandleRefreshTriggers(t *testing.T) {
	called := make(chan struct{}, 1)
	SetRefreshFunc(func(ctx context.Context) error {
		called <- struct{}{}
		return nil
	}, 5*time.Second)
	defer SetRefreshFunc(nil, 0)

	rec := httptest.NewRecorder()
	HandleRefresh(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh function was not called")
	}
}

func TestHandleRefreshUnavailable(t *testing.T) {
	SetRefreshFunc(nil, 0)

	rec := httptest.NewRecorder()
	HandleRefresh(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandlePing(t *testing.T) {
	rec := httptest.NewRecorder()
	HandlePing(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Errorf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}
