package ai

import (
	"context"

	"assistec_os/internal/usecase/interfaces"
)

// NoopGateway stands in when no provider is configured. Every call fails, so
// intake degrades silently and explicit diagnosis requests surface the
// unavailability to the caller.
type NoopGateway struct{}

var _ interfaces.IDiagnosisGateway = NoopGateway{}

func (NoopGateway) Summarize(ctx context.Context, reportedIssue string) (string, error) {
	return "", ErrMissingMistralAPIKey
}

func (NoopGateway) PreDiagnose(ctx context.Context, deviceType, brandModel, reportedIssue string) (string, error) {
	return "", ErrMissingMistralAPIKey
}
