package commands

import (
	"context"

	"cavilia/internal/infra/db"
	"cavilia/internal/usecase/queries"
	"cavilia/internal/usecase/shared"
)

type ScheduleBlocksUsecase struct {
	txRunner shared.TxRunner
	blocks   ScheduleBlocksCommandRepository
}

func NewScheduleBlocksUsecase(txRunner shared.TxRunner, blocks ScheduleBlocksCommandRepository) *ScheduleBlocksUsecase {
	return &ScheduleBlocksUsecase{txRunner: txRunner, blocks: blocks}
}

func (u *ScheduleBlocksUsecase) Replace(ctx context.Context, blocks *queries.ScheduleBlocksView) error {
	return u.txRunner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.blocks.ReplaceAll(ctx, tx, blocks)
	})
}
