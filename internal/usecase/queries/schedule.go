package queries

import "context"

type ScheduleBlocksReader interface {
	Get(ctx context.Context) (*ScheduleBlocksView, error)
}

type TemplateReader interface {
	Get(ctx context.Context) (string, error)
}

type ScheduleQueries struct {
	blocks    ScheduleBlocksReader
	templates TemplateReader
}

func NewScheduleQueries(blocks ScheduleBlocksReader, templates TemplateReader) *ScheduleQueries {
	return &ScheduleQueries{blocks: blocks, templates: templates}
}

func (q *ScheduleQueries) GetScheduleBlocks(ctx context.Context) (*ScheduleBlocksView, error) {
	return q.blocks.Get(ctx)
}

func (q *ScheduleQueries) GetReminderTemplate(ctx context.Context) (string, error) {
	return q.templates.Get(ctx)
}
