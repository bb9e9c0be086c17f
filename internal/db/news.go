package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// AddNews inserts a news row. The creation time is assigned by the database.
func (r *Repository) AddNews(ctx context.Context, news *News) error {
	_, err := r.db.ModelContext(ctx, news).
		Value(Columns.News.CreatedAt, "now()").
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) NewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

// News returns one page of news, pinned first and then newest first.
func (r *Repository) News(ctx context.Context, page, limit int) ([]News, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf(
			"page or limit must be greater than 0: page=%d, limit=%d",
			page, limit,
		)
	}

	offset := (page - 1) * limit
	news := []News{}
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."ispinned" DESC`).
		OrderExpr(`"t"."created_at" DESC`).
		Limit(limit).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

// NewsByID returns nil without error when the row does not exist.
func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{ID: newsID}
	err := r.db.ModelContext(ctx, news).
		WherePK().
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) error {
	_, err := r.db.ModelContext(ctx, &News{ID: newsID}).
		WherePK().
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}

	return nil
}

// UpdateNewsText overwrites title, content, short and expires_at.
func (r *Repository) UpdateNewsText(ctx context.Context, news *News) error {
	_, err := r.db.ModelContext(ctx, news).
		Column(
			Columns.News.Title,
			Columns.News.Content,
			Columns.News.Short,
			Columns.News.ExpiresAt,
		).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}

	return nil
}

// UpdateNews overwrites every editable column of the row.
func (r *Repository) UpdateNews(ctx context.Context, news *News) error {
	_, err := r.db.ModelContext(ctx, news).
		Column(
			Columns.News.Title,
			Columns.News.Short,
			Columns.News.Content,
			Columns.News.ImagePath,
			Columns.News.ExpiresAt,
			Columns.News.IsPinned,
		).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to edit news: %w", err)
	}

	return nil
}
