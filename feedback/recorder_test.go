package feedback

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func sample() Sample {
	return Sample{
		Weather:       "sunny",
		TimeAvailable: 60,
		Distance:      8,
		Rating:        4.5,
		Vibe:          "chill",
		Budget:        "free",
		ChosenType:    "park",
	}
}

func TestSQLiteRecorder_RecordAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")

	recorder, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}

	for i := 0; i < 5; i++ {
		recorder.Record(sample())
	}
	if err := recorder.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM feedback"); err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected 5 stored samples, got %d", count)
	}

	var stored Sample
	if err := db.Get(&stored, "SELECT weather, time_available, distance, rating, vibe, budget, chosen_type FROM feedback LIMIT 1"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if stored != sample() {
		t.Errorf("Stored sample mismatch: %+v", stored)
	}
}

func TestSQLiteRecorder_ReopenExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")

	first, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	first.Record(sample())
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	second.Record(sample())
	if err := second.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM feedback"); err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 stored samples across sessions, got %d", count)
	}
}

func TestNoopRecorder(t *testing.T) {
	// Must not panic or block.
	recorder := NewNoopRecorder()
	for i := 0; i < 1000; i++ {
		recorder.Record(sample())
	}
}
