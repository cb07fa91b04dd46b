// Package communications implements the message log: inbound client
// messages, outbound chase messages, and the sentiment labels attached to
// client correspondence.
package communications

import "time"

// Message directions.
const (
	DirectionClientToAdvisor   = "client_to_advisor"
	DirectionAdvisorToClient   = "advisor_to_client"
	DirectionAdvisorToProvider = "advisor_to_provider"
)

// Sentiment labels for client messages.
const (
	SentimentFrustrated = "frustrated"
	SentimentConfused   = "confused"
	SentimentNeutral    = "neutral"
	SentimentPositive   = "positive"
)

// Message represents a logged communication. Sentiment is nil until a
// client message has been labeled; outbound messages are never labeled.
type Message struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	CaseID    *string   `json:"case_id"`
	Direction string    `json:"direction"`
	Channel   string    `json:"channel"`
	Body      string    `json:"body"`
	Sentiment *string   `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordCommand carries the data needed to log a new message.
type RecordCommand struct {
	ClientID  string  `json:"client_id"`
	CaseID    *string `json:"case_id"`
	Direction string  `json:"direction"`
	Channel   string  `json:"channel"`
	Body      string  `json:"body"`
}

// ValidSentiment reports whether the label is one of the recognized values.
func ValidSentiment(label string) bool {
	switch label {
	case SentimentFrustrated, SentimentConfused, SentimentNeutral, SentimentPositive:
		return true
	}
	return false
}

// ValidDirection reports whether the direction is one of the recognized values.
func ValidDirection(direction string) bool {
	switch direction {
	case DirectionClientToAdvisor, DirectionAdvisorToClient, DirectionAdvisorToProvider:
		return true
	}
	return false
}
