package http

import (
	"time"

	"focusflow/internal/model"
	"focusflow/internal/session"
)

// --- Request DTOs ---

type startReq struct {
	TaskTitle string `json:"task_title"`
}

func (r startReq) toInput() session.StartInput {
	return session.StartInput{TaskTitle: r.TaskTitle}
}

type listReq struct {
	Limit int `form:"limit,default=20"`
}

func (r listReq) toInput() session.ListInput {
	return session.ListInput{Limit: r.Limit}
}

// --- Response DTOs ---

type sessionResp struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	TaskTitle string     `json:"task_title"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

func newSessionResp(s model.FocusSession) sessionResp {
	return sessionResp{
		ID:        s.ID,
		UserID:    s.UserID,
		TaskTitle: s.TaskTitle,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

func (h *handler) newListResp(out session.ListOutput) []sessionResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return sessions
}

type statsResp struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
	TodaySessions int `json:"today_sessions"`
	TodayMinutes  int `json:"today_minutes"`
}

func (h *handler) newStatsResp(out session.StatsOutput) statsResp {
	return statsResp{
		TotalSessions: out.TotalSessions,
		TotalMinutes:  out.TotalMinutes,
		TodaySessions: out.TodaySessions,
		TodayMinutes:  out.TodayMinutes,
	}
}

type calendarLinkResp struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

func (h *handler) newCalendarLinkResp(out session.CalendarLinkOutput) calendarLinkResp {
	return calendarLinkResp{URL: out.URL, Title: out.Title}
}

type calendarEventResp struct {
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link"`
	Title    string `json:"title"`
}

func (h *handler) newCalendarEventResp(out session.CalendarEventOutput) calendarEventResp {
	return calendarEventResp{EventID: out.EventID, HtmlLink: out.HtmlLink, Title: out.Title}
}
