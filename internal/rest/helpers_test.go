package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/daniilsolovey/noticeboard/internal/auth"
	"github.com/daniilsolovey/noticeboard/internal/db"
	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "rest-test-secret"

type fakeStore struct {
	userByUsername  func(ctx context.Context, username string) (*db.User, error)
	setUserPassword func(ctx context.Context, userID int, hash string) error
	addNews         func(ctx context.Context, news *db.News) error
	newsCount       func(ctx context.Context) (int, error)
	news            func(ctx context.Context, page, limit int) ([]db.News, error)
	newsByID        func(ctx context.Context, newsID int) (*db.News, error)
	deleteNews      func(ctx context.Context, newsID int) error
	updateNewsText  func(ctx context.Context, news *db.News) error
	updateNews      func(ctx context.Context, news *db.News) error
	replaceSchedule func(ctx context.Context, rows []db.ScheduleRow) error
	schedule        func(ctx context.Context) ([]db.ScheduleRow, error)
}

var _ newsportal.Store = (*fakeStore)(nil)

func (f *fakeStore) UserByUsername(ctx context.Context, username string) (*db.User, error) {
	if f.userByUsername == nil {
		return nil, nil
	}
	return f.userByUsername(ctx, username)
}

func (f *fakeStore) SetUserPassword(ctx context.Context, userID int, hash string) error {
	if f.setUserPassword == nil {
		return nil
	}
	return f.setUserPassword(ctx, userID, hash)
}

func (f *fakeStore) AddNews(ctx context.Context, news *db.News) error {
	if f.addNews == nil {
		return nil
	}
	return f.addNews(ctx, news)
}

func (f *fakeStore) NewsCount(ctx context.Context) (int, error) {
	if f.newsCount == nil {
		return 0, nil
	}
	return f.newsCount(ctx)
}

func (f *fakeStore) News(ctx context.Context, page, limit int) ([]db.News, error) {
	if f.news == nil {
		return []db.News{}, nil
	}
	return f.news(ctx, page, limit)
}

func (f *fakeStore) NewsByID(ctx context.Context, newsID int) (*db.News, error) {
	if f.newsByID == nil {
		return nil, nil
	}
	return f.newsByID(ctx, newsID)
}

func (f *fakeStore) DeleteNews(ctx context.Context, newsID int) error {
	if f.deleteNews == nil {
		return nil
	}
	return f.deleteNews(ctx, newsID)
}

func (f *fakeStore) UpdateNewsText(ctx context.Context, news *db.News) error {
	if f.updateNewsText == nil {
		return nil
	}
	return f.updateNewsText(ctx, news)
}

func (f *fakeStore) UpdateNews(ctx context.Context, news *db.News) error {
	if f.updateNews == nil {
		return nil
	}
	return f.updateNews(ctx, news)
}

func (f *fakeStore) ReplaceSchedule(ctx context.Context, rows []db.ScheduleRow) error {
	if f.replaceSchedule == nil {
		return nil
	}
	return f.replaceSchedule(ctx, rows)
}

func (f *fakeStore) Schedule(ctx context.Context) ([]db.ScheduleRow, error) {
	if f.schedule == nil {
		return []db.ScheduleRow{}, nil
	}
	return f.schedule(ctx)
}

func newTestIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer(testSecret)
	require.NoError(t, err)
	return issuer
}

func newTestServer(t *testing.T, store *fakeStore) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := newsportal.NewManager(store, auth.NewHasher(bcrypt.MinCost), newTestIssuer(t), logger)
	return NewHandler(manager, logger).RegisterRoutes("")
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(t *testing.T, e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func strPtr(s string) *string {
	return &s
}
