package domain

type Verdict string

const (
	VerdictOnTime     Verdict = "on_time"
	VerdictMustRevise Verdict = "must_revise"
)

// EventSource names where a stored calendar event came from.
type EventSource string

const (
	SourceManual EventSource = "manual"
	SourceImport EventSource = "import"
)

const (
	DefaultHoursPerDay   = 24
	DefaultSleepingHours = 8
)
