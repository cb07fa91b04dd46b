// Package postadvice implements post-advice follow-up tracking: the
// outstanding actions owed to a client after advice has been given, with
// deadline-ordered reminder queues.
package postadvice

import "time"

// Item status values. The usual path is pending through completed; rejected
// and resubmitted cover items a client returned unusable.
const (
	StatusPending            = "pending"
	StatusSent               = "sent"
	StatusOpened             = "opened"
	StatusPartiallyCompleted = "partially_completed"
	StatusCompleted          = "completed"
	StatusRejected           = "rejected"
	StatusResubmitted        = "resubmitted"
)

// Item represents a post-advice follow-up action. DaysUntilDeadline is nil
// for items with no fixed deadline; such items sort after every dated item
// in the reminder queue.
type Item struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	ClientName        string    `json:"client_name"`
	Description       string    `json:"description"`
	Status            string    `json:"status"`
	DaysOutstanding   int       `json:"days_outstanding"`
	DaysUntilDeadline *int      `json:"days_until_deadline"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to track a new follow-up item.
type CreateCommand struct {
	ClientID          string `json:"client_id"`
	Description       string `json:"description"`
	DaysUntilDeadline *int   `json:"days_until_deadline"`
}

// ValidStatus reports whether the status is one of the recognized values.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusSent, StatusOpened, StatusPartiallyCompleted,
		StatusCompleted, StatusRejected, StatusResubmitted:
		return true
	}
	return false
}
