package metrics

import "time"

// ResultLabel classifies how a reference was handled.
type ResultLabel string

const (
	ResultResolved   ResultLabel = "resolved"
	ResultUnresolved ResultLabel = "unresolved"
	ResultInvalid    ResultLabel = "invalid"
	ResultSkipped    ResultLabel = "skipped"
)

// BuildOutcome is the final status of a build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// Recorder receives build observations. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcome)
	IncPagesRendered()
	IncReference(kind string, result ResultLabel)
	AddAssetsCopied(n int)
	SetNavPages(n int)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)               {}
func (NoopRecorder) IncPagesRendered()                          {}
func (NoopRecorder) IncReference(string, ResultLabel)           {}
func (NoopRecorder) AddAssetsCopied(int)                        {}
func (NoopRecorder) SetNavPages(int)                            {}
