package breakdown

// Step is one concrete piece of a decomposed task. Steps are produced
// per request and never persisted.
type Step struct {
	Title            string
	EstimatedMinutes int
}

// DefaultEstimatedMinutes is used when the model omits an estimate for
// a step.
const DefaultEstimatedMinutes = 25

// --- UseCase Inputs / Outputs ---

type DecomposeInput struct {
	Task string
}

type DecomposeOutput struct {
	Steps []Step
}
