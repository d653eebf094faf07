package history

import "time"

// Phase kinds stored in the history table.
const (
	KindWork       = "work"
	KindShortBreak = "short_break"
	KindLongBreak  = "long_break"
)

// PhaseRecord is one completed work shift or break.
type PhaseRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Kind        string    `gorm:"not null;index" json:"kind"`
	Task        string    `gorm:"not null;default:''" json:"task"`
	Duration    int64     `gorm:"not null;default:0" json:"duration"` // Duration in seconds
	WorkShift   int       `gorm:"not null;default:1" json:"work_shift"`
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// KindSummary aggregates completed phases of one kind.
type KindSummary struct {
	Kind         string `json:"kind"`
	Count        int    `json:"count"`
	TotalSeconds int64  `json:"total_seconds"`
}

// DaySummary is what the info dialog shows.
type DaySummary struct {
	Since       time.Time
	WorkShifts  int
	Breaks      int
	FocusedTime time.Duration
	BreakTime   time.Duration
	LastTask    string
}
