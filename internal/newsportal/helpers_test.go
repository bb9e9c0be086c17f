package newsportal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/noticeboard/internal/auth"
	"github.com/daniilsolovey/noticeboard/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockStore is a manual stub implementation of Store
type mockStore struct {
	userByUsernameFunc  func(ctx context.Context, username string) (*db.User, error)
	setUserPasswordFunc func(ctx context.Context, userID int, hash string) error
	addNewsFunc         func(ctx context.Context, news *db.News) error
	newsCountFunc       func(ctx context.Context) (int, error)
	newsFunc            func(ctx context.Context, page, limit int) ([]db.News, error)
	newsByIDFunc        func(ctx context.Context, newsID int) (*db.News, error)
	deleteNewsFunc      func(ctx context.Context, newsID int) error
	updateNewsTextFunc  func(ctx context.Context, news *db.News) error
	updateNewsFunc      func(ctx context.Context, news *db.News) error
	replaceScheduleFunc func(ctx context.Context, rows []db.ScheduleRow) error
	scheduleFunc        func(ctx context.Context) ([]db.ScheduleRow, error)
}

func (m *mockStore) UserByUsername(ctx context.Context, username string) (*db.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockStore) SetUserPassword(ctx context.Context, userID int, hash string) error {
	if m.setUserPasswordFunc != nil {
		return m.setUserPasswordFunc(ctx, userID, hash)
	}
	return nil
}

func (m *mockStore) AddNews(ctx context.Context, news *db.News) error {
	if m.addNewsFunc != nil {
		return m.addNewsFunc(ctx, news)
	}
	return nil
}

func (m *mockStore) NewsCount(ctx context.Context) (int, error) {
	if m.newsCountFunc != nil {
		return m.newsCountFunc(ctx)
	}
	return 0, nil
}

func (m *mockStore) News(ctx context.Context, page, limit int) ([]db.News, error) {
	if m.newsFunc != nil {
		return m.newsFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *mockStore) NewsByID(ctx context.Context, newsID int) (*db.News, error) {
	if m.newsByIDFunc != nil {
		return m.newsByIDFunc(ctx, newsID)
	}
	return nil, nil
}

func (m *mockStore) DeleteNews(ctx context.Context, newsID int) error {
	if m.deleteNewsFunc != nil {
		return m.deleteNewsFunc(ctx, newsID)
	}
	return nil
}

func (m *mockStore) UpdateNewsText(ctx context.Context, news *db.News) error {
	if m.updateNewsTextFunc != nil {
		return m.updateNewsTextFunc(ctx, news)
	}
	return nil
}

func (m *mockStore) UpdateNews(ctx context.Context, news *db.News) error {
	if m.updateNewsFunc != nil {
		return m.updateNewsFunc(ctx, news)
	}
	return nil
}

func (m *mockStore) ReplaceSchedule(ctx context.Context, rows []db.ScheduleRow) error {
	if m.replaceScheduleFunc != nil {
		return m.replaceScheduleFunc(ctx, rows)
	}
	return nil
}

func (m *mockStore) Schedule(ctx context.Context) ([]db.ScheduleRow, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx)
	}
	return nil, nil
}

const testSecret = "test-secret"

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, store Store) *Manager {
	t.Helper()

	issuer, err := auth.NewIssuer(testSecret)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}

	m := NewManager(store, auth.NewHasher(bcrypt.MinCost), issuer, noOpLogger())
	m.now = func() time.Time { return testNow }
	return m
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}
