package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"focusflow/internal/breakdown"
)

// Models often wrap JSON in a markdown code fence despite being told
// not to. The first fenced block wins, tagged or not.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

func extractReply(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "```") {
		if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}
	return text
}

// parseSteps decodes the model reply into steps. Titles must be
// strings or they fall back to empty; estimates tolerate numbers and
// numeric strings, defaulting when absent. Anything else fails the
// whole reply.
func parseSteps(content string) ([]breakdown.Step, error) {
	text := extractReply(content)
	if text == "" {
		return nil, errors.New("empty reply")
	}

	var raw []map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("expected a JSON array of steps: %v", err)
	}

	steps := make([]breakdown.Step, 0, len(raw))
	for i, obj := range raw {
		title, _ := obj["title"].(string)

		minutes := breakdown.DefaultEstimatedMinutes
		if v, ok := obj["estimated_minutes"]; ok {
			m, err := coerceMinutes(v)
			if err != nil {
				return nil, fmt.Errorf("step %d: %v", i, err)
			}
			minutes = m
		}

		steps = append(steps, breakdown.Step{
			Title:            title,
			EstimatedMinutes: minutes,
		})
	}

	return steps, nil
}

func coerceMinutes(v any) (int, error) {
	switch m := v.(type) {
	case float64:
		return int(m), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(m))
		if err != nil {
			return 0, fmt.Errorf("estimated_minutes %q is not an integer", m)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("estimated_minutes has unsupported type %T", v)
	}
}
