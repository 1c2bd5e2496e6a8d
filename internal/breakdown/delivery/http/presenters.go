package http

import "focusflow/internal/breakdown"

type decomposeReq struct {
	Task string `json:"task" binding:"required"`
}

func (r decomposeReq) toInput() breakdown.DecomposeInput {
	return breakdown.DecomposeInput{
		Task: r.Task,
	}
}

type stepResp struct {
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// newStepsResp returns a bare JSON array, empty but non-null when the
// model produced no steps.
func (h handler) newStepsResp(output breakdown.DecomposeOutput) []stepResp {
	resp := make([]stepResp, 0, len(output.Steps))
	for _, s := range output.Steps {
		resp = append(resp, stepResp{
			Title:            s.Title,
			EstimatedMinutes: s.EstimatedMinutes,
		})
	}
	return resp
}
