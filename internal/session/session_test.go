package session

import (
	"testing"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

func TestSetLiveMatchesCopies(t *testing.T) {
	sess := New("s1")
	in := []models.DisplayMatch{{ID: 1, Home: "A", Away: "B"}}
	sess.SetLiveMatches(in)

	// Mutating the caller's slice must not leak into the session.
	in[0].Home = "mutated"
	if got := sess.LiveMatches(); got[0].Home != "A" {
		t.Errorf("session shares caller slice: %+v", got[0])
	}

	// Mutating a read copy must not leak either.
	out := sess.LiveMatches()
	out[0].Away = "mutated"
	if got := sess.LiveMatches(); got[0].Away != "B" {
		t.Errorf("reader mutation leaked into session: %+v", got[0])
	}
}

func TestSetLiveMatchesReplacesFully(t *testing.T) {
	sess := New("s1")
	sess.SetLiveMatches([]models.DisplayMatch{{ID: 1}, {ID: 2}})
	sess.SetLiveMatches(nil)
	if got := sess.LiveMatches(); len(got) != 0 {
		t.Errorf("expected empty list after replacement, got %d", len(got))
	}
}

func TestStateRestoreRoundTrip(t *testing.T) {
	sess := New("s1")
	sess.SetLiveMatches([]models.DisplayMatch{{ID: 1, Home: "A", Away: "B", Score: "1-0"}})
	state := sess.State()

	restored := New("s1")
	restored.Restore(state)

	got := restored.LiveMatches()
	if len(got) != 1 || got[0] != state.LiveMatches[0] {
		t.Errorf("restore mismatch: %+v", got)
	}
	if restored.UpdatedAt() != state.UpdatedAt {
		t.Errorf("updated_at not restored: %v != %v", restored.UpdatedAt(), state.UpdatedAt)
	}
}

func TestNewDefaultsID(t *testing.T) {
	if New("").ID() != "default" {
		t.Error("empty id should default")
	}
}

func TestUpdatedAtStamped(t *testing.T) {
	sess := New("s1")
	if !sess.UpdatedAt().IsZero() {
		t.Error("fresh session should have zero UpdatedAt")
	}
	sess.SetLiveMatches(nil)
	if sess.UpdatedAt().IsZero() {
		t.Error("UpdatedAt not stamped on SetLiveMatches")
	}
}

func TestKey(t *testing.T) {
	if Key("abc") != "session:abc:live_matches" {
		t.Errorf("unexpected key: %s", Key("abc"))
	}
}
