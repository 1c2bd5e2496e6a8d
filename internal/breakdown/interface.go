package breakdown

import "context"

// UseCase turns one vague task into a short list of actionable steps
// with time estimates.
type UseCase interface {
	Decompose(ctx context.Context, input DecomposeInput) (DecomposeOutput, error)
}
