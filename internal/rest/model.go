package rest

import (
	"time"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type AddNewsRequest struct {
	Title     string           `json:"title" form:"title"`
	Content   string           `json:"content" form:"content"`
	Short     string           `json:"short" form:"short"`
	ExpiresAt newsportal.Field `json:"expires_at" form:"expires_at"`
	IsPinned  newsportal.Field `json:"is_pinned" form:"is_pinned"`
	ImagePath string           `json:"image_path" form:"image_path"`
}

type UpdateNewsRequest struct {
	Title     string           `json:"title" form:"title"`
	Content   string           `json:"content" form:"content"`
	Short     string           `json:"short" form:"short"`
	ExpiresAt newsportal.Field `json:"expires_at" form:"expires_at"`
}

type EditNewsRequest struct {
	ID        newsportal.Field `json:"id" form:"id"`
	Title     string           `json:"naslov" form:"naslov"`
	Short     string           `json:"short" form:"short"`
	Content   string           `json:"opis" form:"opis"`
	ExpiresAt newsportal.Field `json:"expires_at" form:"expires_at"`
	IsPinned  newsportal.Field `json:"is_pinned" form:"is_pinned"`
	ImagePath newsportal.Field `json:"image_path" form:"image_path"`
}

type ScheduleRequest struct {
	Rows []ScheduleRowRequest `json:"rows"`
}

type ScheduleRowRequest struct {
	Monday        newsportal.Field `json:"ponedjeljak"`
	MondayTime    newsportal.Field `json:"ponedjeljak_time"`
	Tuesday       newsportal.Field `json:"utorak"`
	TuesdayTime   newsportal.Field `json:"utorak_time"`
	Wednesday     newsportal.Field `json:"srijeda"`
	WednesdayTime newsportal.Field `json:"srijeda_time"`
	Thursday      newsportal.Field `json:"cetvrtak"`
	ThursdayTime  newsportal.Field `json:"cetvrtak_time"`
	Friday        newsportal.Field `json:"petak"`
	FridayTime    newsportal.Field `json:"petak_time"`
	Saturday      newsportal.Field `json:"subota"`
	SaturdayTime  newsportal.Field `json:"subota_time"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type NewsPageResponse struct {
	News       []News `json:"novosti"`
	TotalPages int    `json:"totalPages"`
}

type ScheduleResponse struct {
	Rows []ScheduleRow `json:"rows"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type News struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Short     string     `json:"short"`
	ExpiresAt *time.Time `json:"expires_at"`
	ImagePath string     `json:"image_path"`
	IsPinned  bool       `json:"ispinned"`
	CreatedAt time.Time  `json:"created_at"`
	IsExpired bool       `json:"isExpired"`
	ExpiresIn *int64     `json:"expires_in"`
}

type ScheduleRow struct {
	ID            int     `json:"id"`
	Monday        *string `json:"ponedjeljak"`
	MondayTime    *string `json:"ponedjeljak_time"`
	Tuesday       *string `json:"utorak"`
	TuesdayTime   *string `json:"utorak_time"`
	Wednesday     *string `json:"srijeda"`
	WednesdayTime *string `json:"srijeda_time"`
	Thursday      *string `json:"cetvrtak"`
	ThursdayTime  *string `json:"cetvrtak_time"`
	Friday        *string `json:"petak"`
	FridayTime    *string `json:"petak_time"`
	Saturday      *string `json:"subota"`
	SaturdayTime  *string `json:"subota_time"`
}
