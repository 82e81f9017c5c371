package readstore

import (
	"context"

	"cavilia/internal/infra"
	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"
)

// ScheduleBlocksReadStore reads the admin agenda: full day-offs and single
// blocked time slots.
type ScheduleBlocksReadStore struct {
	db db.DBTX
}

func NewScheduleBlocksReadStore(dbtx db.DBTX) *ScheduleBlocksReadStore {
	return &ScheduleBlocksReadStore{db: dbtx}
}

func (r *ScheduleBlocksReadStore) Get(ctx context.Context) (*queries.ScheduleBlocksView, error) {
	view := &queries.ScheduleBlocksView{
		Dayoffs:    []string{},
		TimeBlocks: []queries.TimeBlockView{},
	}

	dayoffRows, err := r.db.Query(ctx, `SELECT date FROM schedule_dayoffs ORDER BY date ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule dayoffs", err)
	}
	defer dayoffRows.Close()

	for dayoffRows.Next() {
		var date string
		if err := dayoffRows.Scan(&date); err != nil {
			return nil, infra.WrapRepoErr("failed to scan dayoff row", err)
		}
		view.Dayoffs = append(view.Dayoffs, date)
	}
	if dayoffRows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate dayoff rows", dayoffRows.Err())
	}

	blockRows, err := r.db.Query(ctx, `SELECT date, time, label FROM schedule_time_blocks ORDER BY date ASC, time ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule time blocks", err)
	}
	defer blockRows.Close()

	for blockRows.Next() {
		var b queries.TimeBlockView
		if err := blockRows.Scan(&b.Date, &b.Time, &b.Label); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time block row", err)
		}
		view.TimeBlocks = append(view.TimeBlocks, b)
	}
	if blockRows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate time block rows", blockRows.Err())
	}

	return view, nil
}
