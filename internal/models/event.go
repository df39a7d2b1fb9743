package models

// ActivityEvent is published to the event stream when a user acts on their data.
type ActivityEvent struct {
	EventID   string `json:"event_id"`          // Unique event id
	Timestamp int64  `json:"timestamp"`         // Unix timestamp
	UserID    int64  `json:"user_id"`           // Acting user
	Action    string `json:"action"`            // e.g. user.registered, habit.created
	Subject   int64  `json:"subject,omitempty"` // Affected resource id, when applicable
}
