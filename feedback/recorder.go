package feedback

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Sample is one accepted prediction, stored for offline retraining.
type Sample struct {
	Weather       string  `db:"weather"`
	TimeAvailable int     `db:"time_available"`
	Distance      float64 `db:"distance"`
	Rating        float64 `db:"rating"`
	Vibe          string  `db:"vibe"`
	Budget        string  `db:"budget"`
	ChosenType    string  `db:"chosen_type"`
}

// Recorder accepts training samples. Record must never block the caller.
type Recorder interface {
	Record(s Sample)
}

const createFeedbackTable = `
	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		weather TEXT NOT NULL,
		time_available INTEGER NOT NULL,
		distance REAL NOT NULL,
		rating REAL NOT NULL,
		vibe TEXT NOT NULL,
		budget TEXT NOT NULL,
		chosen_type TEXT NOT NULL,
		recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

const insertFeedback = `
	INSERT INTO feedback (
		weather, time_available, distance, rating, vibe, budget, chosen_type
	) VALUES (
		:weather, :time_available, :distance, :rating, :vibe, :budget, :chosen_type
	)`

const sampleBufferSize = 256

// SQLiteRecorder appends samples to an embedded append-only SQLite table.
// Writes happen on a single background goroutine; a full buffer drops the
// sample so the scoring path is never held up.
type SQLiteRecorder struct {
	db      *sqlx.DB
	samples chan Sample
	done    chan struct{}
}

// NewSQLiteRecorder opens (or creates) the feedback store at path and starts
// the background writer.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback store %q: %w", path, err)
	}
	if _, err := db.Exec(createFeedbackTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create feedback table: %w", err)
	}

	r := &SQLiteRecorder{
		db:      db,
		samples: make(chan Sample, sampleBufferSize),
		done:    make(chan struct{}),
	}
	go r.drain()
	return r, nil
}

// Record queues a sample. Drops it when the buffer is full.
func (r *SQLiteRecorder) Record(s Sample) {
	select {
	case r.samples <- s:
	default:
		log.Println("[Feedback] Buffer full, dropping sample.")
	}
}

// Close flushes queued samples and closes the store.
func (r *SQLiteRecorder) Close() error {
	close(r.samples)
	<-r.done
	return r.db.Close()
}

func (r *SQLiteRecorder) drain() {
	defer close(r.done)
	for s := range r.samples {
		if _, err := r.db.NamedExec(insertFeedback, s); err != nil {
			log.Printf("[Feedback] Failed to store sample: %v", err)
		}
	}
}

// NoopRecorder discards every sample. Used when the store cannot be opened.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (*NoopRecorder) Record(Sample) {}
