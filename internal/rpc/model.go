package rpc

import (
	"time"
)

type NewsFilter struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//limit=6 items per page
	Limit *int `json:"limit,omitempty"`
}

type News struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Short     string     `json:"short"`
	ExpiresAt *time.Time `json:"expiresAt"`
	ImagePath string     `json:"imagePath"`
	IsPinned  bool       `json:"isPinned"`
	CreatedAt time.Time  `json:"createdAt"`
	IsExpired bool       `json:"isExpired"`
	// ExpiresIn is milliseconds until expiry, negative once expired.
	ExpiresIn *int64 `json:"expiresIn"`
}

type NewsPage struct {
	News       NewsList `json:"novosti"`
	TotalPages int      `json:"totalPages"`
}

type DaySlot struct {
	Label *string `json:"label"`
	Time  *string `json:"time"`
}

type ScheduleRow struct {
	ID        int     `json:"id"`
	Monday    DaySlot `json:"monday"`
	Tuesday   DaySlot `json:"tuesday"`
	Wednesday DaySlot `json:"wednesday"`
	Thursday  DaySlot `json:"thursday"`
	Friday    DaySlot `json:"friday"`
	Saturday  DaySlot `json:"saturday"`
}
