package newsportal

import (
	"time"

	"github.com/daniilsolovey/noticeboard/internal/db"
)

// News is a stored row annotated with expiry information at read time.
type News struct {
	db.News
	IsExpired bool
	// ExpiresIn is milliseconds until expiry, negative once expired, nil without expiry.
	ExpiresIn *int64
}

type NewsPage struct {
	News       []News
	TotalPages int
}

type ScheduleRow struct {
	db.ScheduleRow
}

type LoginResult struct {
	// Token is empty when the call only set the initial password.
	Token       string
	PasswordSet bool
}

type NewNews struct {
	Title     string
	Content   string
	Short     string
	ExpiresAt Field
	IsPinned  Field
	ImagePath string
}

type NewsText struct {
	ID        int
	Title     string
	Content   string
	Short     string
	ExpiresAt Field
}

type NewsEdit struct {
	ID        Field
	Title     string
	Short     string
	Content   string
	ExpiresAt Field
	IsPinned  Field
	ImagePath Field
}

// DaySlot is the label and time of one weekday cell.
type DaySlot struct {
	Label Field
	Time  Field
}

// ScheduleInput is one schedule row, Monday to Saturday.
type ScheduleInput struct {
	Monday    DaySlot
	Tuesday   DaySlot
	Wednesday DaySlot
	Thursday  DaySlot
	Friday    DaySlot
	Saturday  DaySlot
}

func annotateNews(n db.News, now time.Time) News {
	news := News{News: n}
	if n.ExpiresAt != nil {
		news.IsExpired = n.ExpiresAt.Before(now)
		ms := n.ExpiresAt.Sub(now).Milliseconds()
		news.ExpiresIn = &ms
	}

	return news
}

func newScheduleRow(in ScheduleInput) db.ScheduleRow {
	return db.ScheduleRow{
		Monday:        NullableText(in.Monday.Label),
		MondayTime:    NullableText(in.Monday.Time),
		Tuesday:       NullableText(in.Tuesday.Label),
		TuesdayTime:   NullableText(in.Tuesday.Time),
		Wednesday:     NullableText(in.Wednesday.Label),
		WednesdayTime: NullableText(in.Wednesday.Time),
		Thursday:      NullableText(in.Thursday.Label),
		ThursdayTime:  NullableText(in.Thursday.Time),
		Friday:        NullableText(in.Friday.Label),
		FridayTime:    NullableText(in.Friday.Time),
		Saturday:      NullableText(in.Saturday.Label),
		SaturdayTime:  NullableText(in.Saturday.Time),
	}
}
