package usecase

import (
	"focusflow/internal/breakdown"
	"focusflow/pkg/log"
	"focusflow/pkg/openai"
)

type implUseCase struct {
	l     log.Logger
	llm   openai.IOpenAI
	model string
}

// New builds the breakdown use case. llm may be nil when no API key is
// configured; Decompose then fails with ErrNotConfigured.
func New(l log.Logger, llm openai.IOpenAI, model string) breakdown.UseCase {
	if model == "" {
		model = openai.DefaultModel
	}

	return &implUseCase{
		l:     l,
		llm:   llm,
		model: model,
	}
}
