package postgre

import (
	"fmt"
	"strings"

	repo "focusflow/internal/session/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneSession.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneSessionOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for
// ListSessions.
func (r *implRepository) buildListQuery(opt repo.ListSessionsOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		parts = append(parts, fmt.Sprintf("WHERE user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	parts = append(parts, "ORDER BY started_at DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
