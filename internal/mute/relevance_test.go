package mute

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/fritter-app/fritter/internal/models"
)

// fakeRuleStore is an in-memory RuleStore
type fakeRuleStore struct {
	mutes []models.Mute
}

func (f *fakeRuleStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Mute, error) {
	var out []models.Mute
	for _, m := range f.mutes {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRuleStore) Delete(ctx context.Context, id int64) error {
	for i, m := range f.mutes {
		if m.ID == id {
			f.mutes = append(f.mutes[:i], f.mutes[i+1:]...)
			return nil
		}
	}
	return nil
}

func phraseMute(id, owner int64, phrase string) models.Mute {
	return models.Mute{
		ID:      id,
		OwnerID: owner,
		Phrase:  sql.NullString{String: phrase, Valid: true},
	}
}

func withExpiry(m models.Mute, end time.Time) models.Mute {
	m.DurationEnd = sql.NullTime{Time: end, Valid: true}
	return m
}

func withWindow(m models.Mute, startMins, endMins int) models.Mute {
	m.StartMins = sql.NullInt16{Int16: int16(startMins), Valid: true}
	m.EndMins = sql.NullInt16{Int16: int16(endMins), Valid: true}
	return m
}

func TestRelevance_ReapExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeRuleStore{mutes: []models.Mute{
		withExpiry(phraseMute(1, 1, "old"), now.Add(-time.Hour)),
		phraseMute(2, 1, "forever"),
		withExpiry(phraseMute(3, 1, "fresh"), now.Add(time.Hour)),
		withExpiry(phraseMute(4, 2, "other owner"), now.Add(-time.Hour)),
	}}

	r := NewRelevance(store)
	survivors, err := r.ReapExpired(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("ReapExpired() unexpected error: %v", err)
	}

	if len(survivors) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(survivors))
	}
	if survivors[0].ID != 2 || survivors[1].ID != 3 {
		t.Errorf("Survivors out of order: got ids %d, %d", survivors[0].ID, survivors[1].ID)
	}

	// The expired rule is gone from storage, not just filtered out
	remaining, _ := store.ListByOwner(context.Background(), 1)
	if len(remaining) != 2 {
		t.Errorf("Expected expired mute deleted from store, %d rules remain", len(remaining))
	}

	// Another owner's expired rule is untouched
	other, _ := store.ListByOwner(context.Background(), 2)
	if len(other) != 1 {
		t.Errorf("Expected owner 2's rules untouched, got %d", len(other))
	}
}

func TestRelevance_ActiveRules_Window(t *testing.T) {
	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lateNight := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	store := &fakeRuleStore{mutes: []models.Mute{
		phraseMute(1, 1, "always"),
		withWindow(phraseMute(2, 1, "office hours"), ClockMins(9, 0), ClockMins(17, 0)),
		withWindow(phraseMute(3, 1, "overnight"), ClockMins(22, 0), ClockMins(2, 0)),
	}}
	r := NewRelevance(store)

	active, err := r.ActiveRules(context.Background(), 1, noon)
	if err != nil {
		t.Fatalf("ActiveRules() unexpected error: %v", err)
	}
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 2 {
		t.Errorf("At noon expected rules [1 2], got %v", ruleIDs(active))
	}

	active, err = r.ActiveRules(context.Background(), 1, lateNight)
	if err != nil {
		t.Fatalf("ActiveRules() unexpected error: %v", err)
	}
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Errorf("At 23:30 expected rules [1 3], got %v", ruleIDs(active))
	}
}

func TestRelevance_ActiveRules_Idempotent(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeRuleStore{mutes: []models.Mute{
		withExpiry(phraseMute(1, 1, "old"), now.Add(-time.Minute)),
		phraseMute(2, 1, "keep"),
	}}
	r := NewRelevance(store)

	first, err := r.ActiveRules(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("ActiveRules() unexpected error: %v", err)
	}
	second, err := r.ActiveRules(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("ActiveRules() unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Expected identical rule sets, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Rule set changed between calls: %v vs %v", ruleIDs(first), ruleIDs(second))
		}
	}
}

func TestRelevance_HalfWindowBehavesUnrestricted(t *testing.T) {
	// A rule persisted with only one boundary (possible via direct store
	// writes) behaves like one with no window at all
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	half := phraseMute(1, 1, "oops")
	half.StartMins = sql.NullInt16{Int16: int16(ClockMins(22, 0)), Valid: true}

	store := &fakeRuleStore{mutes: []models.Mute{half}}
	r := NewRelevance(store)

	active, err := r.ActiveRules(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("ActiveRules() unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("Expected half-window rule to be always active, got %d rules", len(active))
	}
}

func ruleIDs(mutes []models.Mute) []int64 {
	ids := make([]int64, len(mutes))
	for i, m := range mutes {
		ids[i] = m.ID
	}
	return ids
}
