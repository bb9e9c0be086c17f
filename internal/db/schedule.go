package db

import (
	"context"
	"fmt"
)

// ReplaceSchedule swaps the whole schedule table for rows in one transaction,
// so readers never observe a half-populated table.
func (r *Repository) ReplaceSchedule(ctx context.Context, rows []ScheduleRow) error {
	return r.InTx(ctx, func(tx *Repository) error {
		_, err := tx.db.ModelContext(ctx, (*ScheduleRow)(nil)).
			Where("TRUE").
			Delete()
		if err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		for i := range rows {
			rows[i].ID = 0
		}

		_, err = tx.db.ModelContext(ctx, &rows).Insert()
		if err != nil {
			return fmt.Errorf("failed to insert schedule rows: %w", err)
		}

		return nil
	})
}

func (r *Repository) Schedule(ctx context.Context) ([]ScheduleRow, error) {
	rows := []ScheduleRow{}
	err := r.db.ModelContext(ctx, &rows).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}

	return rows, nil
}
