package server

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/codecrafters-io/http-server-starter-go/internal/codec"
	"github.com/codecrafters-io/http-server-starter-go/internal/request"
	"github.com/codecrafters-io/http-server-starter-go/internal/response"
	"github.com/codecrafters-io/http-server-starter-go/internal/router"
	"github.com/rs/zerolog"
)

// conn 在一个连接上只处理一个请求，然后关闭
type conn struct {
	srv     *Server
	netConn net.Conn
	logger  zerolog.Logger
	start   time.Time

	req     *request.Request
	match   router.Match
	result  Result
	scheme  codec.Scheme
	written int
}

type stateFunc func(*conn) stateFunc

func newConn(srv *Server, nc net.Conn) *conn {
	return &conn{
		srv:     srv,
		netConn: nc,
		logger:  srv.logger.With().Str("remote", remoteAddr(nc)).Logger(),
		start:   time.Now(),
	}
}

func remoteAddr(nc net.Conn) string {
	if a := nc.RemoteAddr(); a != nil {
		return a.String()
	}
	return ""
}

// serve 把状态机跑完。任何状态里发生 panic 都直接关闭连接，不写响应
func (c *conn) serve() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("connection handler panicked")
			c.netConn.Close()
		}
	}()

	for state := awaitingData; state != nil; {
		state = state(c)
	}
}

// awaitingData 从 socket 读取，直到拿到完整的请求（包括请求体）并解析完成
func awaitingData(c *conn) stateFunc {
	if d := c.srv.cfg.ReadTimeoutDuration(); d > 0 {
		c.netConn.SetReadDeadline(time.Now().Add(d))
	}
	req, err := request.Read(c.netConn, c.srv.cfg.MaxRequestSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.logger.Debug().Msg("connection closed before request")
		} else {
			c.logger.Warn().Err(err).Msg("failed to read request")
		}
		return closed
	}
	c.req = req
	return routing
}

// routing 拒绝 GET/POST 以外的方法，然后匹配路径
func routing(c *conn) stateFunc {
	switch c.req.Method {
	case MethodGet, MethodPost:
	default:
		c.result = Result{Status: response.StatusMethodNotAllowed}
		return responding
	}
	c.match = router.Route(c.req.Method, c.req.Path)
	return dispatching
}

func dispatching(c *conn) stateFunc {
	c.result = c.srv.mux.Serve(c.req, c.match)
	return encoding
}

// encoding 处理函数允许压缩、客户端也接受 gzip 时压缩响应体
func encoding(c *conn) stateFunc {
	if !c.result.Compress {
		return responding
	}
	scheme := codec.Negotiate(c.req.Headers.Get("Accept-Encoding"))
	if scheme == codec.Identity {
		return responding
	}
	body, err := codec.Encode(c.result.Body, scheme)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode response body")
		return closed
	}
	c.result.Body = body
	c.result.Headers.Add("Content-Encoding", scheme.Name())
	c.scheme = scheme
	return responding
}

func responding(c *conn) stateFunc {
	if d := c.srv.cfg.WriteTimeoutDuration(); d > 0 {
		c.netConn.SetWriteDeadline(time.Now().Add(d))
	}
	n, err := response.Write(c.netConn, c.result.Status, c.result.Headers, c.result.Body)
	c.written = n
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to write response")
		return closed
	}
	c.logRequest()
	return closed
}

func closed(c *conn) stateFunc {
	if err := c.netConn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("error closing connection")
	}
	return nil
}

func (c *conn) logRequest() {
	c.logger.Info().
		Str("method", c.req.Method).
		Str("path", c.req.Path).
		Int("status", c.result.Status).
		Int("bytes", c.written).
		Str("encoding", c.scheme.Name()).
		Dur("duration", time.Since(c.start)).
		Msg("request served")
}
