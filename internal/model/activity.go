package model

import "time"

// ActivityEntry is one record in the append-only activity log. The Details
// text carries the acting user's name; Browser/OS/Device are the coarse
// environment classification captured at record time.
type ActivityEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"`
	ID        int64     `json:"id"`
}
