package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NamespaceNews     = "news"
	NamespaceSchedule = "schedule"
)

func New(logger *slog.Logger, manager *newsportal.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NamespaceNews, NewNewsService(manager))
	rpcServer.Register(NamespaceSchedule, NewScheduleService(manager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "noticeboard", nil))

	return rpcServer
}
