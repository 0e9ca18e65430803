package model

// Note is a persisted note. Timestamp is the human-readable time of day
// captured at the last save, stored as text (e.g. "09:30 AM").
type Note struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Favorite    bool   `json:"favorite"`
	Timestamp   string `json:"timestamp"`
}
