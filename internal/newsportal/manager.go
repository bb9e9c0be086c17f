package newsportal

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/noticeboard/internal/auth"
	"github.com/daniilsolovey/noticeboard/internal/db"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
)

// Store is the persistence the manager needs; *db.Repository implements it.
type Store interface {
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	SetUserPassword(ctx context.Context, userID int, hash string) error

	AddNews(ctx context.Context, news *db.News) error
	NewsCount(ctx context.Context) (int, error)
	News(ctx context.Context, page, limit int) ([]db.News, error)
	NewsByID(ctx context.Context, newsID int) (*db.News, error)
	DeleteNews(ctx context.Context, newsID int) error
	UpdateNewsText(ctx context.Context, news *db.News) error
	UpdateNews(ctx context.Context, news *db.News) error

	ReplaceSchedule(ctx context.Context, rows []db.ScheduleRow) error
	Schedule(ctx context.Context) ([]db.ScheduleRow, error)
}

type Manager struct {
	db     Store
	hasher *auth.Hasher
	issuer *auth.Issuer
	log    *slog.Logger
	now    func() time.Time
}

func NewManager(store Store, hasher *auth.Hasher, issuer *auth.Issuer, log *slog.Logger) *Manager {
	return &Manager{
		db:     store,
		hasher: hasher,
		issuer: issuer,
		log:    log,
		now:    time.Now,
	}
}
