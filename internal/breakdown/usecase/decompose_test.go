package usecase_test

import (
	"context"
	"errors"
	"testing"

	"focusflow/internal/breakdown"
	"focusflow/internal/breakdown/usecase"
	"focusflow/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockLLM struct {
	content string
	err     error
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &openai.Response{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: m.content}},
		},
	}, nil
}

func decomposeWith(t *testing.T, content string) (breakdown.DecomposeOutput, error) {
	t.Helper()
	uc := usecase.New(&mockLogger{}, &mockLLM{content: content}, "")
	return uc.Decompose(context.Background(), breakdown.DecomposeInput{Task: "write a report"})
}

func TestDecompose(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, nil, "")
		_, err := uc.Decompose(context.Background(), breakdown.DecomposeInput{Task: "anything"})
		if !errors.Is(err, breakdown.ErrNotConfigured) {
			t.Errorf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("Plain JSON Array", func(t *testing.T) {
		out, err := decomposeWith(t, `[{"title": "Do X", "estimated_minutes": 20}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Steps) != 1 {
			t.Fatalf("expected 1 step, got %d", len(out.Steps))
		}
		if out.Steps[0].Title != "Do X" || out.Steps[0].EstimatedMinutes != 20 {
			t.Errorf("unexpected step: %+v", out.Steps[0])
		}
	})

	t.Run("Fenced JSON Block", func(t *testing.T) {
		out, err := decomposeWith(t, "Here you go:\n```json\n[{\"title\": \"Do X\", \"estimated_minutes\": 20}]\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Steps) != 1 || out.Steps[0].Title != "Do X" {
			t.Errorf("unexpected steps: %+v", out.Steps)
		}
	})

	t.Run("Untagged Fence", func(t *testing.T) {
		out, err := decomposeWith(t, "```\n[{\"title\": \"Do X\"}]\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Steps) != 1 {
			t.Fatalf("expected 1 step, got %d", len(out.Steps))
		}
	})

	t.Run("Empty Array", func(t *testing.T) {
		out, err := decomposeWith(t, "[]")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Steps) != 0 {
			t.Errorf("expected no steps, got %d", len(out.Steps))
		}
	})

	t.Run("Non JSON Reply", func(t *testing.T) {
		_, err := decomposeWith(t, "not json")
		if !errors.Is(err, breakdown.ErrUnparsableReply) {
			t.Errorf("expected ErrUnparsableReply, got %v", err)
		}
	})

	t.Run("Empty Reply", func(t *testing.T) {
		_, err := decomposeWith(t, "")
		if !errors.Is(err, breakdown.ErrUnparsableReply) {
			t.Errorf("expected ErrUnparsableReply, got %v", err)
		}
	})

	t.Run("JSON Object Instead Of Array", func(t *testing.T) {
		_, err := decomposeWith(t, `{"title": "Do X"}`)
		if !errors.Is(err, breakdown.ErrUnparsableReply) {
			t.Errorf("expected ErrUnparsableReply, got %v", err)
		}
	})

	t.Run("Missing Estimate Defaults", func(t *testing.T) {
		out, err := decomposeWith(t, `[{"title": "Do X"}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Steps[0].EstimatedMinutes != breakdown.DefaultEstimatedMinutes {
			t.Errorf("expected default estimate, got %d", out.Steps[0].EstimatedMinutes)
		}
	})

	t.Run("Fractional Estimate Truncates", func(t *testing.T) {
		out, err := decomposeWith(t, `[{"title": "Do X", "estimated_minutes": 20.9}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Steps[0].EstimatedMinutes != 20 {
			t.Errorf("expected 20, got %d", out.Steps[0].EstimatedMinutes)
		}
	})

	t.Run("Numeric String Estimate", func(t *testing.T) {
		out, err := decomposeWith(t, `[{"title": "Do X", "estimated_minutes": "30"}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Steps[0].EstimatedMinutes != 30 {
			t.Errorf("expected 30, got %d", out.Steps[0].EstimatedMinutes)
		}
	})

	t.Run("Bad Estimate Fails Whole Reply", func(t *testing.T) {
		_, err := decomposeWith(t, `[{"title": "A", "estimated_minutes": 10}, {"title": "B", "estimated_minutes": "soon"}]`)
		if !errors.Is(err, breakdown.ErrUnparsableReply) {
			t.Errorf("expected ErrUnparsableReply, got %v", err)
		}
	})

	t.Run("Non String Title Falls Back", func(t *testing.T) {
		out, err := decomposeWith(t, `[{"title": 5, "estimated_minutes": 10}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Steps[0].Title != "" {
			t.Errorf("expected empty title, got %q", out.Steps[0].Title)
		}
	})

	t.Run("Upstream Error Passthrough", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockLLM{err: errors.New("upstream down")}, "")
		_, err := uc.Decompose(context.Background(), breakdown.DecomposeInput{Task: "anything"})
		if err == nil || errors.Is(err, breakdown.ErrUnparsableReply) {
			t.Errorf("expected raw upstream error, got %v", err)
		}
	})
}
