// Package clients implements the client domain: the people whose pension
// transfers the service chases on behalf of their advisor.
package clients

import "time"

// Communication preference values. Outbound chases go over the client's
// preferred channel.
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelPhone    = "phone"
)

// Client represents an advised client. Employment, income, and risk
// profile are advisory context and may be absent.
type Client struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Email                   string    `json:"email"`
	Age                     int       `json:"age"`
	EmploymentType          *string   `json:"employment_type"`
	AnnualIncome            *float64  `json:"annual_income"`
	RiskProfile             *string   `json:"risk_profile"`
	CommunicationPreference string    `json:"communication_preference"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new client.
// CommunicationPreference defaults to email when empty.
type CreateCommand struct {
	Name                    string   `json:"name"`
	Email                   string   `json:"email"`
	Age                     int      `json:"age"`
	EmploymentType          *string  `json:"employment_type"`
	AnnualIncome            *float64 `json:"annual_income"`
	RiskProfile             *string  `json:"risk_profile"`
	CommunicationPreference string   `json:"communication_preference"`
}
