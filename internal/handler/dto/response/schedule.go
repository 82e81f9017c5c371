package response

import "cavilia/internal/usecase/queries"

type TimeBlockResponse struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Label string `json:"label"`
}

type ScheduleBlocksResponse struct {
	Dayoffs    []string            `json:"dayoffs"`
	TimeBlocks []TimeBlockResponse `json:"time_blocks"`
}

func FromScheduleBlocksView(v *queries.ScheduleBlocksView) *ScheduleBlocksResponse {
	resp := &ScheduleBlocksResponse{
		Dayoffs:    v.Dayoffs,
		TimeBlocks: make([]TimeBlockResponse, len(v.TimeBlocks)),
	}
	for i, b := range v.TimeBlocks {
		resp.TimeBlocks[i] = TimeBlockResponse(b)
	}
	return resp
}
