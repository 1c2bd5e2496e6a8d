package session

import (
	"context"

	"focusflow/internal/model"
)

// UseCase is the session lifecycle and everything derived from it.
type UseCase interface {
	Start(ctx context.Context, sc model.Scope, input StartInput) (StartOutput, error)
	End(ctx context.Context, sc model.Scope, sessionID string) (EndOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	CalendarLink(ctx context.Context, sc model.Scope, sessionID string) (CalendarLinkOutput, error)
	CalendarEvent(ctx context.Context, sc model.Scope, sessionID string) (CalendarEventOutput, error)
}
