package rpc

import (
	"context"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods for news.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewNewsService(manager *newsportal.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List returns a page of news, pinned first and newest first.
//
//zenrpc:filter page and limit, both optional
//zenrpc:return page of news with the total page count
//zenrpc:500 internal server error
func (s NewsService) List(ctx context.Context, filter NewsFilter) (*NewsPage, error) {
	page, err := s.manager.NewsPage(ctx, filter.PageOrDefault(), filter.LimitOrDefault())
	if err != nil {
		return nil, newError(err)
	}

	return NewNewsPage(page), nil
}

// Count returns the number of stored news.
//
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s NewsService) Count(ctx context.Context) (int, error) {
	count, err := s.manager.NewsCount(ctx)
	return count, newError(err)
}
