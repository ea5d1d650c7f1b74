//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kleafrog-source/research-resin/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "resin.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSQLiteStoreResinRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	resin := model.Resin{
		VersionedRecord: CurrentVersions(),
		Name:            "Amberlite IR120",
		Manufacturer:    "DuPont",
		Type:            "Strong Acid Cation",
		Structure:       "Gel",
		FunctionalGroup: "Sulfonic Acid",
		IonicForm:       "Na+",
	}
	if err := store.SaveResin(ctx, resin); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.GetResin(ctx, resin.Name)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("resin not found after save")
	}
	if got.Manufacturer != resin.Manufacturer || got.IonicForm != resin.IonicForm {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	resin.IonicForm = "H+"
	if err := store.SaveResin(ctx, resin); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, _, err = store.GetResin(ctx, resin.Name)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if got.IonicForm != "H+" {
		t.Fatalf("upsert did not replace payload: %+v", got)
	}
}

func TestSQLiteStoreIonStatesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	records := []model.StateRecord{
		{VersionedRecord: CurrentVersions(), RunID: "run-1", Ion: "H+", State: model.DefaultState()},
		{VersionedRecord: CurrentVersions(), RunID: "run-1", Ion: "Na+", State: model.DefaultState()},
	}
	if err := store.SaveIonStates(ctx, "run-1", records); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.GetIonStates(ctx, "run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("states not found after save")
	}
	if len(got) != 2 || got[0].Ion != "H+" || got[1].Ion != "Na+" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if _, found, err := store.GetIonStates(ctx, "missing"); err != nil || found {
		t.Fatalf("missing run: found=%v err=%v", found, err)
	}
}

func TestSQLiteStoreTrainingSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	summary := model.TrainingSummary{
		VersionedRecord: CurrentVersions(),
		RunID:           "train-1",
		SampleCount:     9,
		Properties:      []string{"conductivity"},
		Importances: map[string]map[string]float64{
			"conductivity": {"charge": 1.0},
		},
	}
	if err := store.SaveTrainingSummary(ctx, summary); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.GetTrainingSummary(ctx, "train-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("summary not found after save")
	}
	if got.SampleCount != 9 || got.Importances["conductivity"]["charge"] != 1.0 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
