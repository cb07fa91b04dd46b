package cases

import "fmt"

// State identifies a stage in the LOA case lifecycle. The set is closed:
// values outside the declared constants are rejected at the boundary.
type State string

const (
	StateAwaitingClientSignature      State = "awaiting_client_signature"
	StateDocumentAwaitingVerification State = "document_awaiting_verification"
	StateClientDocumentsRejected      State = "client_documents_rejected"
	StateSignedReadyForProvider       State = "signed_ready_for_provider"
	StateSubmittedToProvider          State = "submitted_to_provider"
	StateWithProviderProcessing       State = "with_provider_processing"
	StateProviderResponseIncomplete   State = "provider_response_incomplete"
	StateProviderInfoReceived         State = "provider_info_received"
	StateComplete                     State = "complete"
)

var stateLabels = map[State]string{
	StateAwaitingClientSignature:      "Awaiting Client Signature",
	StateDocumentAwaitingVerification: "Document Awaiting Verification",
	StateClientDocumentsRejected:      "Client Documents Rejected",
	StateSignedReadyForProvider:       "Signed LOA - Ready for Provider",
	StateSubmittedToProvider:          "Submitted to Provider",
	StateWithProviderProcessing:       "With Provider - Processing",
	StateProviderResponseIncomplete:   "Provider Response Incomplete",
	StateProviderInfoReceived:         "Provider Info Received - Notify Client",
	StateComplete:                     "Case Complete",
}

// clientChaseStates are the stages where the next action rests with the client.
var clientChaseStates = map[State]bool{
	StateAwaitingClientSignature:      true,
	StateDocumentAwaitingVerification: true,
	StateClientDocumentsRejected:      true,
	StateProviderInfoReceived:         true,
}

// providerChaseStates are the stages where the next action rests with the provider.
var providerChaseStates = map[State]bool{
	StateSubmittedToProvider:        true,
	StateWithProviderProcessing:     true,
	StateProviderResponseIncomplete: true,
}

// documentLinkStates are the stages from which a client document may be
// attached to the case.
var documentLinkStates = map[State]bool{
	StateAwaitingClientSignature: true,
	StateClientDocumentsRejected: true,
}

// Chase type classifications for queue segregation.
const (
	ChaseClient   = "client"
	ChaseProvider = "provider"
	ChaseOther    = "other"
)

// ParseState validates a raw state value.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, raw)
	}
	return s, nil
}

// Valid reports whether the state is one of the declared lifecycle stages.
func (s State) Valid() bool {
	_, ok := stateLabels[s]
	return ok
}

// Label returns the human-readable display name for the state.
func (s State) Label() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return string(s)
}

// ClientChase reports whether chasing in this state targets the client.
func (s State) ClientChase() bool {
	return clientChaseStates[s]
}

// ProviderChase reports whether chasing in this state targets the provider.
func (s State) ProviderChase() bool {
	return providerChaseStates[s]
}

// ChaseType classifies who the next action rests with.
func (s State) ChaseType() string {
	switch {
	case s.ClientChase():
		return ChaseClient
	case s.ProviderChase():
		return ChaseProvider
	default:
		return ChaseOther
	}
}

// Terminal reports whether the case has reached its final stage.
func (s State) Terminal() bool {
	return s == StateComplete
}

// AcceptsDocument reports whether a client document may be linked in this state.
func (s State) AcceptsDocument() bool {
	return documentLinkStates[s]
}
