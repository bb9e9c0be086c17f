package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/noticeboard/internal/db"
)

// ReplaceSchedule replaces the whole schedule with rows. An empty list clears it.
func (m *Manager) ReplaceSchedule(ctx context.Context, rows []ScheduleInput) error {
	dbRows := make([]db.ScheduleRow, len(rows))
	for i := range rows {
		dbRows[i] = newScheduleRow(rows[i])
	}

	if err := m.db.ReplaceSchedule(ctx, dbRows); err != nil {
		return fmt.Errorf("db replace schedule: %w", err)
	}

	return nil
}

func (m *Manager) Schedule(ctx context.Context) ([]ScheduleRow, error) {
	rows, err := m.db.Schedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get schedule: %w", err)
	}

	return NewScheduleRows(rows), nil
}
