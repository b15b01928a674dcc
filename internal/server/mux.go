package server

import (
	"github.com/codecrafters-io/http-server-starter-go/internal/request"
	"github.com/codecrafters-io/http-server-starter-go/internal/response"
	"github.com/codecrafters-io/http-server-starter-go/internal/router"
)

// Result 路由处理函数的返回值。Compress 为 true 的响应体参与 Content-Encoding 协商
type Result struct {
	Status   int
	Headers  response.Headers
	Body     []byte
	Compress bool
}

// HandlerFunc 处理一个已经路由好的请求
type HandlerFunc func(req *request.Request, match router.Match) Result

// Mux 把 router.Match 分发给注册的处理函数
type Mux struct {
	routes map[router.HandlerID]HandlerFunc
}

// NewMux 创建一个空的 Mux
func NewMux() *Mux {
	return &Mux{
		routes: make(map[router.HandlerID]HandlerFunc),
	}
}

// Handle 为 id 注册处理函数
func (m *Mux) Handle(id router.HandlerID, handler HandlerFunc) {
	m.routes[id] = handler
}

// Serve 调用 match 对应的处理函数，没有注册的路由（包括 router.NoMatch）返回 404
func (m *Mux) Serve(req *request.Request, match router.Match) Result {
	if h, ok := m.routes[match.Handler]; ok {
		return h(req, match)
	}
	return notFound()
}

func notFound() Result {
	return Result{Status: response.StatusNotFound}
}
