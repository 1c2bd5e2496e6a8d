package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/session"
	"focusflow/internal/session/repository"
	"focusflow/internal/session/repository/inmem"
	"focusflow/internal/session/usecase"
	"focusflow/pkg/gcalendar"
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

type mockCalendar struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return m.createFunc(req)
}

func newUC(repo repository.Repository, cal usecase.CalendarClient) session.UseCase {
	return usecase.New(&mockLogger{}, repo, cal, "primary")
}

// seedSession inserts a session with controlled timestamps, bypassing
// the use case clock.
func seedSession(t *testing.T, repo repository.Repository, id, userID, title string, startedAt time.Time, endedAt *time.Time) {
	t.Helper()
	ctx := context.Background()
	_, err := repo.CreateSession(ctx, repository.CreateSessionOptions{
		ID:        id,
		UserID:    userID,
		TaskTitle: title,
		StartedAt: startedAt,
	})
	if err != nil {
		t.Fatalf("seed create: %v", err)
	}
	if endedAt != nil {
		if _, err := repo.EndSession(ctx, repository.EndSessionOptions{ID: id, UserID: userID, EndedAt: *endedAt}); err != nil {
			t.Fatalf("seed end: %v", err)
		}
	}
}

func TestStartAndList(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}
	bob := model.Scope{UserID: "bob"}

	t.Run("Start With Title", func(t *testing.T) {
		uc := newUC(inmem.New(), nil)
		out, err := uc.Start(ctx, alice, session.StartInput{TaskTitle: "Write report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.ID == "" {
			t.Error("expected generated session id")
		}
		if out.Session.TaskTitle != "Write report" {
			t.Errorf("unexpected title %q", out.Session.TaskTitle)
		}
		if out.Session.EndedAt != nil {
			t.Error("new session must be active")
		}
		if out.Session.UserID != "alice" {
			t.Errorf("unexpected user %q", out.Session.UserID)
		}
	})

	t.Run("Blank Title Gets Placeholder", func(t *testing.T) {
		uc := newUC(inmem.New(), nil)
		out, err := uc.Start(ctx, alice, session.StartInput{TaskTitle: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.TaskTitle != model.DefaultTaskTitle {
			t.Errorf("expected %q, got %q", model.DefaultTaskTitle, out.Session.TaskTitle)
		}
	})

	t.Run("List Newest First", func(t *testing.T) {
		repo := inmem.New()
		base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		seedSession(t, repo, "s1", "alice", "first", base, nil)
		seedSession(t, repo, "s2", "alice", "second", base.Add(time.Hour), nil)
		seedSession(t, repo, "s3", "alice", "third", base.Add(2*time.Hour), nil)

		uc := newUC(repo, nil)
		out, err := uc.List(ctx, alice, session.ListInput{Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Sessions) != 3 {
			t.Fatalf("expected 3 sessions, got %d", len(out.Sessions))
		}
		if out.Sessions[0].ID != "s3" || out.Sessions[2].ID != "s1" {
			t.Errorf("wrong order: %s, %s, %s", out.Sessions[0].ID, out.Sessions[1].ID, out.Sessions[2].ID)
		}
	})

	t.Run("List Honors Limit", func(t *testing.T) {
		repo := inmem.New()
		base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		seedSession(t, repo, "s1", "alice", "first", base, nil)
		seedSession(t, repo, "s2", "alice", "second", base.Add(time.Hour), nil)

		uc := newUC(repo, nil)
		out, err := uc.List(ctx, alice, session.ListInput{Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Sessions) != 1 || out.Sessions[0].ID != "s2" {
			t.Errorf("expected only newest session, got %+v", out.Sessions)
		}
	})

	t.Run("Zero Limit Returns Empty", func(t *testing.T) {
		repo := inmem.New()
		seedSession(t, repo, "s1", "alice", "first", time.Now().UTC(), nil)

		uc := newUC(repo, nil)
		out, err := uc.List(ctx, alice, session.ListInput{Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Sessions == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(out.Sessions) != 0 {
			t.Errorf("expected no sessions, got %d", len(out.Sessions))
		}
	})

	t.Run("List Is Scoped To Caller", func(t *testing.T) {
		repo := inmem.New()
		seedSession(t, repo, "s1", "alice", "mine", time.Now().UTC(), nil)

		uc := newUC(repo, nil)
		out, err := uc.List(ctx, bob, session.ListInput{Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Sessions) != 0 {
			t.Errorf("expected no sessions for other user, got %d", len(out.Sessions))
		}
	})
}

func TestEnd(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	t.Run("End Active Session", func(t *testing.T) {
		repo := inmem.New()
		uc := newUC(repo, nil)
		started, err := uc.Start(ctx, alice, session.StartInput{TaskTitle: "Deep work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.End(ctx, alice, started.Session.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.EndedAt == nil {
			t.Fatal("expected ended_at to be set")
		}
		if out.Session.EndedAt.Before(out.Session.StartedAt) {
			t.Error("ended_at precedes started_at")
		}
	})

	t.Run("End Twice Fails", func(t *testing.T) {
		repo := inmem.New()
		uc := newUC(repo, nil)
		started, _ := uc.Start(ctx, alice, session.StartInput{})
		if _, err := uc.End(ctx, alice, started.Session.ID); err != nil {
			t.Fatalf("first end failed: %v", err)
		}
		_, err := uc.End(ctx, alice, started.Session.ID)
		if !errors.Is(err, session.ErrSessionAlreadyEnded) {
			t.Errorf("expected ErrSessionAlreadyEnded, got %v", err)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := newUC(inmem.New(), nil)
		_, err := uc.End(ctx, alice, "missing")
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Other Users Session Reads As Missing", func(t *testing.T) {
		repo := inmem.New()
		uc := newUC(repo, nil)
		started, _ := uc.Start(ctx, alice, session.StartInput{})

		_, err := uc.End(ctx, model.Scope{UserID: "bob"}, started.Session.ID)
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	t.Run("Empty History", func(t *testing.T) {
		uc := newUC(inmem.New(), nil)
		out, err := uc.Stats(ctx, alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalSessions != 0 || out.TotalMinutes != 0 || out.TodaySessions != 0 || out.TodayMinutes != 0 {
			t.Errorf("expected all zeros, got %+v", out)
		}
	})

	t.Run("Aggregates Floor Minutes", func(t *testing.T) {
		repo := inmem.New()
		now := time.Now().UTC()

		// Ended earlier, not today: 30 minutes.
		oldStart := now.Add(-48 * time.Hour)
		oldEnd := oldStart.Add(30 * time.Minute)
		seedSession(t, repo, "old", "alice", "old", oldStart, &oldEnd)

		// Ended today: 25m30s floors to 25. Seeded from UTC midnight so
		// the start date stays today no matter when the test runs.
		todayStart := now.Truncate(24 * time.Hour)
		todayEnd := todayStart.Add(25*time.Minute + 30*time.Second)
		seedSession(t, repo, "today", "alice", "today", todayStart, &todayEnd)

		// Still active today: counted as a session, no minutes.
		seedSession(t, repo, "active", "alice", "active", now, nil)

		// Another user's session is invisible.
		seedSession(t, repo, "other", "bob", "other", now, nil)

		uc := newUC(repo, nil)
		out, err := uc.Stats(ctx, alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalSessions != 3 {
			t.Errorf("expected 3 total sessions, got %d", out.TotalSessions)
		}
		if out.TotalMinutes != 55 {
			t.Errorf("expected 55 total minutes, got %d", out.TotalMinutes)
		}
		if out.TodaySessions != 2 {
			t.Errorf("expected 2 sessions today, got %d", out.TodaySessions)
		}
		if out.TodayMinutes != 25 {
			t.Errorf("expected 25 minutes today, got %d", out.TodayMinutes)
		}
	})

	t.Run("Clock Skew Clamps To Zero", func(t *testing.T) {
		repo := inmem.New()
		now := time.Now().UTC()
		start := now.Add(-48 * time.Hour)
		end := start.Add(-10 * time.Minute)
		seedSession(t, repo, "skew", "alice", "skew", start, &end)

		uc := newUC(repo, nil)
		out, err := uc.Stats(ctx, alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalMinutes != 0 {
			t.Errorf("expected 0 minutes, got %d", out.TotalMinutes)
		}
		if out.TotalSessions != 1 {
			t.Errorf("expected 1 session, got %d", out.TotalSessions)
		}
	})
}

func TestCalendarLink(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	t.Run("Ended Session Uses Actual Span", func(t *testing.T) {
		repo := inmem.New()
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 1, 11, 2, 30, 0, time.UTC)
		seedSession(t, repo, "s1", "alice", "Write report", start, &end)

		uc := newUC(repo, nil)
		out, err := uc.CalendarLink(ctx, alice, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "Write report" {
			t.Errorf("unexpected title %q", out.Title)
		}

		u, err := url.Parse(out.URL)
		if err != nil {
			t.Fatalf("bad URL: %v", err)
		}
		q := u.Query()
		if q.Get("action") != "TEMPLATE" {
			t.Errorf("missing action param: %s", out.URL)
		}
		if q.Get("text") != "Write report" {
			t.Errorf("unexpected text param %q", q.Get("text"))
		}
		if got := q.Get("dates"); got != "20240101T100000Z/20240101T110230Z" {
			t.Errorf("unexpected dates param %q", got)
		}
	})

	t.Run("Active Session Gets Default Block", func(t *testing.T) {
		repo := inmem.New()
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		seedSession(t, repo, "s1", "alice", "Focus", start, nil)

		uc := newUC(repo, nil)
		out, err := uc.CalendarLink(ctx, alice, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, _ := url.Parse(out.URL)
		if got := u.Query().Get("dates"); got != "20240101T100000Z/20240101T110000Z" {
			t.Errorf("expected 60 minute block, got %q", got)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := newUC(inmem.New(), nil)
		_, err := uc.CalendarLink(ctx, alice, "missing")
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestCalendarEvent(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	t.Run("Not Configured", func(t *testing.T) {
		repo := inmem.New()
		seedSession(t, repo, "s1", "alice", "Focus", time.Now().UTC(), nil)

		uc := newUC(repo, nil)
		_, err := uc.CalendarEvent(ctx, alice, "s1")
		if !errors.Is(err, session.ErrCalendarNotConfigured) {
			t.Errorf("expected ErrCalendarNotConfigured, got %v", err)
		}
	})

	t.Run("Inserts Event", func(t *testing.T) {
		repo := inmem.New()
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		end := start.Add(50 * time.Minute)
		seedSession(t, repo, "s1", "alice", "Write report", start, &end)

		var gotReq gcalendar.CreateEventRequest
		cal := &mockCalendar{
			createFunc: func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
				gotReq = req
				return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/event?eid=ev-1"}, nil
			},
		}

		uc := newUC(repo, cal)
		out, err := uc.CalendarEvent(ctx, alice, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.EventID != "ev-1" || out.Title != "Write report" {
			t.Errorf("unexpected output %+v", out)
		}
		if gotReq.CalendarID != "primary" {
			t.Errorf("unexpected calendar id %q", gotReq.CalendarID)
		}
		if !gotReq.StartTime.Equal(start) || !gotReq.EndTime.Equal(end) {
			t.Errorf("unexpected event window %v-%v", gotReq.StartTime, gotReq.EndTime)
		}
	})

	t.Run("Provider Failure Propagates", func(t *testing.T) {
		repo := inmem.New()
		seedSession(t, repo, "s1", "alice", "Focus", time.Now().UTC(), nil)

		cal := &mockCalendar{
			createFunc: func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		uc := newUC(repo, cal)
		_, err := uc.CalendarEvent(ctx, alice, "s1")
		if err == nil {
			t.Error("expected provider error to propagate")
		}
	})
}
