// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	News struct {
		ID, Title, Content, Short, ExpiresAt, ImagePath, IsPinned, CreatedAt string
	}
	ScheduleRow struct {
		ID, Monday, MondayTime, Tuesday, TuesdayTime, Wednesday, WednesdayTime, Thursday, ThursdayTime, Friday, FridayTime, Saturday, SaturdayTime string
	}
	User struct {
		ID, Username, Password, IsAdmin string
	}
}{
	News: struct {
		ID, Title, Content, Short, ExpiresAt, ImagePath, IsPinned, CreatedAt string
	}{
		ID:        "id",
		Title:     "title",
		Content:   "content",
		Short:     "short",
		ExpiresAt: "expires_at",
		ImagePath: "image_path",
		IsPinned:  "ispinned",
		CreatedAt: "created_at",
	},
	ScheduleRow: struct {
		ID, Monday, MondayTime, Tuesday, TuesdayTime, Wednesday, WednesdayTime, Thursday, ThursdayTime, Friday, FridayTime, Saturday, SaturdayTime string
	}{
		ID:            "id",
		Monday:        "ponedjeljak",
		MondayTime:    "ponedjeljak_time",
		Tuesday:       "utorak",
		TuesdayTime:   "utorak_time",
		Wednesday:     "srijeda",
		WednesdayTime: "srijeda_time",
		Thursday:      "cetvrtak",
		ThursdayTime:  "cetvrtak_time",
		Friday:        "petak",
		FridayTime:    "petak_time",
		Saturday:      "subota",
		SaturdayTime:  "subota_time",
	},
	User: struct {
		ID, Username, Password, IsAdmin string
	}{
		ID:       "id",
		Username: "username",
		Password: "password",
		IsAdmin:  "isadmin",
	},
}

var Tables = struct {
	News struct {
		Name, Alias string
	}
	ScheduleRow struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	ScheduleRow: struct {
		Name, Alias string
	}{
		Name:  "raspored",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID        int        `pg:"id,pk"`
	Title     string     `pg:"title,use_zero"`
	Content   string     `pg:"content,use_zero"`
	Short     string     `pg:"short,use_zero"`
	ExpiresAt *time.Time `pg:"expires_at"`
	ImagePath string     `pg:"image_path,use_zero"`
	IsPinned  bool       `pg:"ispinned,use_zero"`
	CreatedAt time.Time  `pg:"created_at,use_zero"`
}

type ScheduleRow struct {
	tableName struct{} `pg:"raspored,alias:t,discard_unknown_columns"`

	ID            int     `pg:"id,pk"`
	Monday        *string `pg:"ponedjeljak"`
	MondayTime    *string `pg:"ponedjeljak_time"`
	Tuesday       *string `pg:"utorak"`
	TuesdayTime   *string `pg:"utorak_time"`
	Wednesday     *string `pg:"srijeda"`
	WednesdayTime *string `pg:"srijeda_time"`
	Thursday      *string `pg:"cetvrtak"`
	ThursdayTime  *string `pg:"cetvrtak_time"`
	Friday        *string `pg:"petak"`
	FridayTime    *string `pg:"petak_time"`
	Saturday      *string `pg:"subota"`
	SaturdayTime  *string `pg:"subota_time"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID       int     `pg:"id,pk"`
	Username string  `pg:"username,use_zero"`
	Password *string `pg:"password"`
	IsAdmin  bool    `pg:"isadmin,use_zero"`
}
