package interfaces

import "context"

// IDiagnosisGateway abstracts the external text-generation provider (e.g.
// Mistral) used to enrich service orders.
//
// Calls are blocking, single-attempt and best-effort from the caller's point
// of view: the usecase decides per call site whether a failure degrades the
// operation or aborts it. Implementations must not hold any store resource
// while the HTTP call is in flight.
type IDiagnosisGateway interface {
	// Summarize produces a concise technical summary of the reported issue.
	Summarize(ctx context.Context, reportedIssue string) (string, error)
	// PreDiagnose produces a preliminary bench diagnosis for the device and
	// reported issue.
	PreDiagnose(ctx context.Context, deviceType, brandModel, reportedIssue string) (string, error)
}
