// Package predict derives forward-looking guidance for a case: how likely
// it is to slip, what the advisor should do next, and when it should
// complete. The assessment itself is deterministic; an optional model
// insight adds a narrative sentence on top.
package predict

import (
	"fmt"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
)

// Risk levels.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

const (
	highPriorityThreshold = 7.0
	urgentSLADays         = 3
	watchSLADays          = 7
	staleStateDays        = 15

	highRiskPadding   = 7
	mediumRiskPadding = 3
)

// stateDurations is the expected remaining days per stage under normal
// progress, used when estimating completion.
var stateDurations = map[cases.State]int{
	cases.StateAwaitingClientSignature:      14,
	cases.StateDocumentAwaitingVerification: 2,
	cases.StateClientDocumentsRejected:      10,
	cases.StateSignedReadyForProvider:       12,
	cases.StateSubmittedToProvider:          10,
	cases.StateWithProviderProcessing:       7,
	cases.StateProviderResponseIncomplete:   14,
	cases.StateProviderInfoReceived:         2,
}

// Prediction is the forward-looking read on a case.
type Prediction struct {
	CaseID            string   `json:"case_id"`
	ClientID          string   `json:"client_id"`
	State             string   `json:"state"`
	Risk              string   `json:"risk"`
	Reasons           []string `json:"reasons"`
	RecommendedAction string   `json:"recommended_action"`
	EstimatedDays     int      `json:"estimated_days_to_completion"`
	Insight           string   `json:"insight,omitempty"`
}

// Assess produces the deterministic portion of a prediction.
func Assess(c cases.Case) Prediction {
	risk, reasons := assessRisk(c)

	return Prediction{
		CaseID:            c.ID,
		ClientID:          c.ClientID,
		State:             string(c.State),
		Risk:              risk,
		Reasons:           reasons,
		RecommendedAction: recommendAction(c, risk),
		EstimatedDays:     estimateCompletion(c, risk),
	}
}

func assessRisk(c cases.Case) (string, []string) {
	var reasons []string

	if c.SLADaysRemaining < 0 {
		reasons = append(reasons, "SLA already overdue")
	}
	if c.PriorityScore >= highPriorityThreshold {
		reasons = append(reasons, fmt.Sprintf("priority score %.1f", c.PriorityScore))
	}
	if c.SLADaysRemaining >= 0 && c.SLADaysRemaining < urgentSLADays {
		reasons = append(reasons, fmt.Sprintf("only %d SLA days remaining", c.SLADaysRemaining))
	}

	if len(reasons) > 0 {
		return RiskHigh, reasons
	}

	if c.DaysInState > staleStateDays {
		reasons = append(reasons, fmt.Sprintf("%d days without progress", c.DaysInState))
	}
	if c.SLADaysRemaining < watchSLADays {
		reasons = append(reasons, fmt.Sprintf("%d SLA days remaining", c.SLADaysRemaining))
	}

	if len(reasons) > 0 {
		return RiskMedium, reasons
	}

	return RiskLow, []string{"progressing within expected timescales"}
}

func recommendAction(c cases.Case, risk string) string {
	switch c.State {
	case cases.StateAwaitingClientSignature:
		if risk == RiskHigh {
			return "Call the client today to walk them through signing the letter of authority"
		}
		return "Send a signature reminder with the signing link"
	case cases.StateDocumentAwaitingVerification:
		return "Review the uploaded document and complete verification"
	case cases.StateClientDocumentsRejected:
		return "Contact the client to explain the rejection and request a clearer copy"
	case cases.StateSignedReadyForProvider:
		return "Submit the signed letter of authority to the provider"
	case cases.StateSubmittedToProvider:
		if risk == RiskHigh {
			return "Chase the provider by phone for acknowledgement"
		}
		return "Await provider acknowledgement, follow up if none arrives"
	case cases.StateWithProviderProcessing:
		if risk == RiskHigh {
			return "Escalate with the provider's servicing team, citing the SLA deadline"
		}
		return "Monitor provider progress against the SLA"
	case cases.StateProviderResponseIncomplete:
		return "Request the missing information from the provider"
	case cases.StateProviderInfoReceived:
		return "Share the provider information with the client and close the case"
	case cases.StateComplete:
		return "No action needed"
	default:
		return "Review the case with an advisor"
	}
}

func estimateCompletion(c cases.Case, risk string) int {
	base, ok := stateDurations[c.State]
	if !ok {
		return 0
	}

	switch risk {
	case RiskHigh:
		base += highRiskPadding
	case RiskMedium:
		base += mediumRiskPadding
	}

	return base
}

// SelectCase picks the client's most pressing open case: highest priority
// first, then the tightest SLA. Returns false when the client has none.
func SelectCase(open []cases.Case) (cases.Case, bool) {
	if len(open) == 0 {
		return cases.Case{}, false
	}

	best := open[0]
	for _, c := range open[1:] {
		if c.PriorityScore > best.PriorityScore ||
			(c.PriorityScore == best.PriorityScore && c.SLADaysRemaining < best.SLADaysRemaining) {
			best = c
		}
	}

	return best, true
}
