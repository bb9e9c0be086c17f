package rpc

import (
	"errors"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

func (f NewsFilter) PageOrDefault() int {
	if f.Page == nil || *f.Page < 1 {
		return newsportal.DefaultPage
	}
	return *f.Page
}

func (f NewsFilter) LimitOrDefault() int {
	if f.Limit == nil || *f.Limit < 1 {
		return newsportal.DefaultLimit
	}
	return *f.Limit
}

func NewNews(n newsportal.News) News {
	return News{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Short:     n.Short,
		ExpiresAt: n.ExpiresAt,
		ImagePath: n.ImagePath,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		IsExpired: n.IsExpired,
		ExpiresIn: n.ExpiresIn,
	}
}

func NewNewsPage(p *newsportal.NewsPage) *NewsPage {
	if p == nil {
		return nil
	}

	return &NewsPage{
		News:       NewNewsList(p.News),
		TotalPages: p.TotalPages,
	}
}

func NewScheduleRow(r newsportal.ScheduleRow) ScheduleRow {
	return ScheduleRow{
		ID:        r.ID,
		Monday:    DaySlot{Label: r.Monday, Time: r.MondayTime},
		Tuesday:   DaySlot{Label: r.Tuesday, Time: r.TuesdayTime},
		Wednesday: DaySlot{Label: r.Wednesday, Time: r.WednesdayTime},
		Thursday:  DaySlot{Label: r.Thursday, Time: r.ThursdayTime},
		Friday:    DaySlot{Label: r.Friday, Time: r.FridayTime},
		Saturday:  DaySlot{Label: r.Saturday, Time: r.SaturdayTime},
	}
}

// newError converts manager errors to JSON-RPC errors with HTTP-like codes.
// Unclassified errors are hidden behind a generic 500.
func newError(err error) error {
	if err == nil {
		return nil
	}

	var perr *newsportal.Error
	if !errors.As(err, &perr) {
		return zenrpc.NewStringError(500, "internal server error")
	}

	switch {
	case errors.Is(err, newsportal.ErrAuth):
		return zenrpc.NewStringError(401, perr.Message)
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(404, perr.Message)
	default:
		return zenrpc.NewStringError(400, perr.Message)
	}
}
