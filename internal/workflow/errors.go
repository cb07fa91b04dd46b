// Package workflow implements the per-case chase workflow: a state graph
// that scores the case, routes it to the next action, and carries out that
// action (client chase, provider chase, portal submission, or document
// verification).
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrOrchestrateFailed  = errors.New("orchestration failed")
	ErrCommunicationFault = errors.New("communication failed")
	ErrSubmissionFailed   = errors.New("provider submission failed")
	ErrVerificationFault  = errors.New("document verification failed")
)
