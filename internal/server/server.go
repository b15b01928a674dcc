package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/codecrafters-io/http-server-starter-go/internal/config"
	"github.com/codecrafters-io/http-server-starter-go/internal/store"
	"github.com/rs/zerolog"
)

// Server 接受 TCP 连接，每个连接只处理一个请求
type Server struct {
	cfg    config.ServerConfig
	store  store.Store
	mux    *Mux
	logger zerolog.Logger
}

// New 创建 Server。st 为 nil 时按 cfg.Directory 创建文件存储
func New(cfg config.ServerConfig, st store.Store, logger zerolog.Logger) *Server {
	if st == nil {
		st = store.New(cfg.Directory)
	}
	s := &Server{
		cfg:    cfg,
		store:  st,
		mux:    NewMux(),
		logger: logger,
	}
	registerRoutes(s.mux, st, logger)
	return s
}

// Listen 绑定 TCP 地址，和 Serve 分开，调用方可以在绑定成功后再做别的事
func Listen(address string) (net.Listener, error) {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", address, err)
	}
	return l, nil
}

// ListenAndServe 绑定 cfg.Address 并开始服务
func (s *Server) ListenAndServe() error {
	l, err := Listen(s.cfg.Address)
	if err != nil {
		return err
	}
	defer l.Close()
	return s.Serve(l)
}

// Serve 循环 Accept，每个连接交给一个独立的 goroutine。
// 监听器关闭后返回 nil，其他 Accept 错误只记录日志，继续接受新连接
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info().Str("address", l.Addr().String()).Msg("listening")
	for {
		nc, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info().Msg("listener closed, no longer accepting connections")
				return nil
			}
			s.logger.Error().Err(err).Msg("failed to accept connection")
			continue
		}
		s.logger.Debug().Str("remote", remoteAddr(nc)).Msg("accepted connection")
		go s.HandleConn(nc)
	}
}

// HandleConn 处理 nc 上的一个请求，然后关闭连接
func (s *Server) HandleConn(nc net.Conn) {
	newConn(s, nc).serve()
}
