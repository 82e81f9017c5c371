package writerepo

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"
)

type ScheduleBlocksRepository struct{}

func NewScheduleBlocksRepository() *ScheduleBlocksRepository {
	return &ScheduleBlocksRepository{}
}

// ReplaceAll swaps the whole agenda in one shot. The admin screen always
// submits the full picture, so diffing is not worth it.
func (r *ScheduleBlocksRepository) ReplaceAll(ctx context.Context, tx db.DBTX, blocks *queries.ScheduleBlocksView) error {
	if _, err := tx.Exec(ctx, `DELETE FROM schedule_dayoffs`); err != nil {
		return infra.WrapRepoErr("failed to clear schedule dayoffs", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM schedule_time_blocks`); err != nil {
		return infra.WrapRepoErr("failed to clear schedule time blocks", err)
	}

	for _, date := range blocks.Dayoffs {
		_, err := tx.Exec(ctx, `INSERT INTO schedule_dayoffs (date) VALUES ($1) ON CONFLICT DO NOTHING`, date)
		if err != nil {
			return infra.WrapRepoErr("failed to insert schedule dayoff", err)
		}
	}
	for _, b := range blocks.TimeBlocks {
		_, err := tx.Exec(ctx, `INSERT INTO schedule_time_blocks (date, time, label) VALUES ($1, $2, $3)`, b.Date, b.Time, b.Label)
		if err != nil {
			return infra.WrapRepoErr("failed to insert schedule time block", err)
		}
	}
	return nil
}
