package store

import (
	"context"
	"time"

	"github.com/BHARTIYAYASH/manasveda/internal/dosha"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session actions recorded as session events.
const (
	SessionStarted   = "started"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// AnswerEventData captures one committed answer.
type AnswerEventData struct {
	SessionID  string
	RoomID     string
	QuestionID string
	Option     string
	Revisions  int
}

// SessionEventData captures a journey lifecycle change.
type SessionEventData struct {
	SessionID      string
	Action         string
	RoomsCompleted int
	Points         int
	DurationSecs   int64
}

// CheckinEventData captures one daily self-report.
type CheckinEventData struct {
	Mood   int
	Energy int
	Stress int
	Sleep  int
	Notes  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event row.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one request purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// SessionEvent is a stored session event row.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// CheckinEvent is a stored check-in row.
type CheckinEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	CheckinEventData
}

// EventRepo provides append and query access to domain events. Every
// append draws from the shared sequence counter, so events of different
// types are totally ordered.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendCheckin(ctx context.Context, data CheckinEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestCheckin returns the most recent check-in, or nil if none exist.
	LatestCheckin(ctx context.Context) (*CheckinEvent, error)

	// Checkins returns check-ins matching opts, newest first.
	Checkins(ctx context.Context, opts QueryOpts) ([]CheckinEvent, error)

	// Sessions returns session events matching opts, newest first.
	Sessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// QueryLLMEvents returns LLM request events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}

// SnapshotData captures a completed journey's outcome.
type SnapshotData struct {
	Version  int           `json:"version"`
	Profile  dosha.Profile `json:"profile"`
	Dominant string        `json:"dominant"`
	Points   int           `json:"points"`
}

// Snapshot represents a point-in-time capture of a constitution profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// List returns up to limit snapshots, newest first (0 = unlimited).
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
