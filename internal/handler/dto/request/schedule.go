package request

import "cavilia/internal/usecase/queries"

type TimeBlock struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Label string `json:"label"`
}

type ReplaceScheduleRequest struct {
	Dayoffs    []string    `json:"dayoffs"`
	TimeBlocks []TimeBlock `json:"time_blocks"`
}

func (r ReplaceScheduleRequest) ToView() *queries.ScheduleBlocksView {
	view := &queries.ScheduleBlocksView{
		Dayoffs:    r.Dayoffs,
		TimeBlocks: make([]queries.TimeBlockView, len(r.TimeBlocks)),
	}
	if view.Dayoffs == nil {
		view.Dayoffs = []string{}
	}
	for i, b := range r.TimeBlocks {
		view.TimeBlocks[i] = queries.TimeBlockView(b)
	}
	return view
}
