package newsportal

import (
	"time"

	"github.com/daniilsolovey/noticeboard/internal/db"
)

func NewNewsList(in []db.News, now time.Time) []News {
	out := make([]News, len(in))
	for i := range in {
		out[i] = annotateNews(in[i], now)
	}
	return out
}

func NewScheduleRows(in []db.ScheduleRow) []ScheduleRow {
	out := make([]ScheduleRow, len(in))
	for i := range in {
		out[i] = ScheduleRow{ScheduleRow: in[i]}
	}
	return out
}
