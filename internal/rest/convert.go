package rest

import "github.com/daniilsolovey/noticeboard/internal/newsportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}

	return result
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

func NewScheduleRow(r newsportal.ScheduleRow) ScheduleRow {
	return ScheduleRow{
		ID:            r.ID,
		Monday:        r.Monday,
		MondayTime:    r.MondayTime,
		Tuesday:       r.Tuesday,
		TuesdayTime:   r.TuesdayTime,
		Wednesday:     r.Wednesday,
		WednesdayTime: r.WednesdayTime,
		Thursday:      r.Thursday,
		ThursdayTime:  r.ThursdayTime,
		Friday:        r.Friday,
		FridayTime:    r.FridayTime,
		Saturday:      r.Saturday,
		SaturdayTime:  r.SaturdayTime,
	}
}

func (r ScheduleRowRequest) ToModel() newsportal.ScheduleInput {
	return newsportal.ScheduleInput{
		Monday:    newsportal.DaySlot{Label: r.Monday, Time: r.MondayTime},
		Tuesday:   newsportal.DaySlot{Label: r.Tuesday, Time: r.TuesdayTime},
		Wednesday: newsportal.DaySlot{Label: r.Wednesday, Time: r.WednesdayTime},
		Thursday:  newsportal.DaySlot{Label: r.Thursday, Time: r.ThursdayTime},
		Friday:    newsportal.DaySlot{Label: r.Friday, Time: r.FridayTime},
		Saturday:  newsportal.DaySlot{Label: r.Saturday, Time: r.SaturdayTime},
	}
}

func (r AddNewsRequest) ToModel() newsportal.NewNews {
	return newsportal.NewNews{
		Title:     r.Title,
		Content:   r.Content,
		Short:     r.Short,
		ExpiresAt: r.ExpiresAt,
		IsPinned:  r.IsPinned,
		ImagePath: r.ImagePath,
	}
}

func (r UpdateNewsRequest) ToModel(id int) newsportal.NewsText {
	return newsportal.NewsText{
		ID:        id,
		Title:     r.Title,
		Content:   r.Content,
		Short:     r.Short,
		ExpiresAt: r.ExpiresAt,
	}
}

func (r EditNewsRequest) ToModel() newsportal.NewsEdit {
	return newsportal.NewsEdit{
		ID:        r.ID,
		Title:     r.Title,
		Short:     r.Short,
		Content:   r.Content,
		ExpiresAt: r.ExpiresAt,
		IsPinned:  r.IsPinned,
		ImagePath: r.ImagePath,
	}
}
