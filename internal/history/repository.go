package history

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Repository handles all database operations for phase records.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a completed phase.
func (r *Repository) Create(record *PhaseRecord) error {
	result := r.db.Create(record)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert phase record")
	}
	return nil
}

// Since returns the phases completed at or after since, oldest first.
func (r *Repository) Since(since time.Time) ([]PhaseRecord, error) {
	var records []PhaseRecord
	result := r.db.Where("completed_at >= ?", since).Order("completed_at ASC").Find(&records)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query phase records")
	}
	return records, nil
}

// SummarySince aggregates phases per kind since the given time.
func (r *Repository) SummarySince(since time.Time) ([]KindSummary, error) {
	var summaries []KindSummary
	result := r.db.Model(&PhaseRecord{}).
		Select("kind, COUNT(*) as count, SUM(duration) as total_seconds").
		Where("completed_at >= ?", since).
		Group("kind").
		Order("kind ASC").
		Scan(&summaries)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query phase summary")
	}
	return summaries, nil
}

// Latest returns the most recent phase, or nil when the history is empty.
func (r *Repository) Latest() (*PhaseRecord, error) {
	var record PhaseRecord
	result := r.db.Order("completed_at DESC").First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "failed to get latest phase")
	}
	return &record, nil
}

// DaySummary collects the numbers shown by the info dialog.
func (r *Repository) DaySummary(since time.Time) (DaySummary, error) {
	summary := DaySummary{Since: since}

	kinds, err := r.SummarySince(since)
	if err != nil {
		return summary, err
	}
	for _, kind := range kinds {
		total := time.Duration(kind.TotalSeconds) * time.Second
		switch kind.Kind {
		case KindWork:
			summary.WorkShifts += kind.Count
			summary.FocusedTime += total
		case KindShortBreak, KindLongBreak:
			summary.Breaks += kind.Count
			summary.BreakTime += total
		}
	}

	latest, err := r.Latest()
	if err != nil {
		return summary, err
	}
	if latest != nil {
		summary.LastTask = latest.Task
	}
	return summary, nil
}

// DeleteBefore removes phases completed before the given time.
func (r *Repository) DeleteBefore(before time.Time) (int64, error) {
	result := r.db.Where("completed_at < ?", before).Delete(&PhaseRecord{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old phase records")
	}
	return result.RowsAffected, nil
}
