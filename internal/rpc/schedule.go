package rpc

import (
	"context"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

type ScheduleService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewScheduleService(manager *newsportal.Manager) *ScheduleService {
	return &ScheduleService{manager: manager}
}

// Get returns every schedule row.
//
//zenrpc:return schedule rows
//zenrpc:500 internal server error
func (s ScheduleService) Get(ctx context.Context) (ScheduleRows, error) {
	rows, err := s.manager.Schedule(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewScheduleRows(rows), nil
}
