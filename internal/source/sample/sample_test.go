package sample

import (
	"context"
	"strconv"
	"testing"
)

func TestGetLiveMatchesCount(t *testing.T) {
	src := NewSource(5)
	out, err := src.GetLiveMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 matches, got %d", len(out))
	}

	for i, m := range out {
		if m.HomeTeam == "" || m.AwayTeam == "" || m.League == "" {
			t.Errorf("match %d: empty fields: %+v", i, m)
		}
		if m.HomeTeam == m.AwayTeam {
			t.Errorf("match %d: team paired with itself: %s", i, m.HomeTeam)
		}
		minute, err := strconv.Atoi(string(m.Minute))
		if err != nil || minute < 1 || minute > 90 {
			t.Errorf("match %d: minute out of range: %q", i, m.Minute)
		}
	}
}

func TestNewSourceDefaultsCount(t *testing.T) {
	src := NewSource(0)
	out, err := src.GetLiveMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("expected default of 3 matches, got %d", len(out))
	}
}
