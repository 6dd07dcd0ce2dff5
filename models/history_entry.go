package models

// HistoryEntry records one past search.
type HistoryEntry struct {
	Location string `json:"location"`
	Vibe     string `json:"vibe"`
	Date     string `json:"date"` // RFC 3339
}
