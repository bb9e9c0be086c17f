package rpc

import "github.com/daniilsolovey/noticeboard/internal/newsportal"

type NewsList []News

func NewNewsList(in []newsportal.News) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(in[i])
	}
	return out
}

type ScheduleRows []ScheduleRow

func NewScheduleRows(in []newsportal.ScheduleRow) ScheduleRows {
	out := make(ScheduleRows, len(in))
	for i := range in {
		out[i] = NewScheduleRow(in[i])
	}
	return out
}
