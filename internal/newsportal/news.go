package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/noticeboard/internal/db"
)

func (m *Manager) AddNews(ctx context.Context, in NewNews) error {
	if in.Title == "" || in.Content == "" || in.Short == "" || in.ImagePath == "" {
		return validationError("title, content, short and image_path are required")
	}

	expiresAt, err := ExpiryOnCreate(in.ExpiresAt)
	if err != nil {
		return err
	}

	news := &db.News{
		Title:     in.Title,
		Content:   in.Content,
		Short:     in.Short,
		ExpiresAt: expiresAt,
		ImagePath: in.ImagePath,
		IsPinned:  PinnedOnCreate(in.IsPinned),
	}
	if err := m.db.AddNews(ctx, news); err != nil {
		return fmt.Errorf("db add news: %w", err)
	}

	return nil
}

func (m *Manager) NewsCount(ctx context.Context) (int, error) {
	count, err := m.db.NewsCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

// NewsPage returns page of the news list, pinned first and newest first.
// Non-positive page or limit fall back to DefaultPage and DefaultLimit.
func (m *Manager) NewsPage(ctx context.Context, page, limit int) (*NewsPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	dbNews, err := m.db.News(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	total, err := m.db.NewsCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get news count: %w", err)
	}

	return &NewsPage{
		News:       NewNewsList(dbNews, m.now()),
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// DeleteNews succeeds whether or not the row exists.
func (m *Manager) DeleteNews(ctx context.Context, newsID int) error {
	if err := m.db.DeleteNews(ctx, newsID); err != nil {
		return fmt.Errorf("db delete news: %w", err)
	}

	return nil
}

// UpdateNews overwrites title, content, short and expiry. A missing expiry
// clears the stored one.
func (m *Manager) UpdateNews(ctx context.Context, in NewsText) error {
	if in.Title == "" || in.Content == "" || in.Short == "" {
		return validationError("title, content and short are required")
	}

	expiresAt, err := ExpiryOnUpdate(in.ExpiresAt)
	if err != nil {
		return err
	}

	news := &db.News{
		ID:        in.ID,
		Title:     in.Title,
		Content:   in.Content,
		Short:     in.Short,
		ExpiresAt: expiresAt,
	}
	if err := m.db.UpdateNewsText(ctx, news); err != nil {
		return fmt.Errorf("db update news: %w", err)
	}

	return nil
}

// EditNews merges the supplied fields into the stored row. Image, pin and
// expiry keep their stored values unless the request says otherwise.
func (m *Manager) EditNews(ctx context.Context, in NewsEdit) error {
	id, ok := in.ID.Int()
	if !ok || in.Title == "" || in.Short == "" || in.Content == "" {
		return validationError("id, naslov, short and opis are required")
	}

	old, err := m.db.NewsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get news by id: %w", err)
	} else if old == nil {
		return notFoundError("news not found")
	}

	expiresAt, err := ExpiryOnEdit(in.ExpiresAt, old.ExpiresAt)
	if err != nil {
		return err
	}

	news := &db.News{
		ID:        id,
		Title:     in.Title,
		Short:     in.Short,
		Content:   in.Content,
		ImagePath: ImageOnEdit(in.ImagePath, old.ImagePath),
		ExpiresAt: expiresAt,
		IsPinned:  PinnedOnEdit(in.IsPinned, old.IsPinned),
		CreatedAt: old.CreatedAt,
	}
	if err := m.db.UpdateNews(ctx, news); err != nil {
		return fmt.Errorf("db edit news: %w", err)
	}

	return nil
}
