package usecase

import (
	"context"
	"fmt"

	"focusflow/internal/breakdown"
	"focusflow/pkg/openai"
)

const completionTemperature = 0.3

func (uc implUseCase) Decompose(ctx context.Context, input breakdown.DecomposeInput) (breakdown.DecomposeOutput, error) {
	if uc.llm == nil {
		return breakdown.DecomposeOutput{}, breakdown.ErrNotConfigured
	}

	resp, err := uc.llm.ChatCompletion(ctx, &openai.Request{
		Model: uc.model,
		Messages: []openai.Message{
			{Role: "system", Content: breakdown.SystemPrompt},
			{Role: "user", Content: input.Task},
		},
		Temperature: completionTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "breakdown.usecase.Decompose.ChatCompletion: %v", err)
		return breakdown.DecomposeOutput{}, err
	}

	steps, err := parseSteps(resp.Content())
	if err != nil {
		uc.l.Warnf(ctx, "breakdown.usecase.Decompose.parseSteps: %v", err)
		return breakdown.DecomposeOutput{}, fmt.Errorf("%w: %v", breakdown.ErrUnparsableReply, err)
	}

	return breakdown.DecomposeOutput{Steps: steps}, nil
}
