package server

import (
	"github.com/codecrafters-io/http-server-starter-go/internal/request"
	"github.com/codecrafters-io/http-server-starter-go/internal/response"
	"github.com/codecrafters-io/http-server-starter-go/internal/router"
	"github.com/codecrafters-io/http-server-starter-go/internal/store"
	"github.com/rs/zerolog"
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	contentTypeText   = "text/plain"
	contentTypeBinary = "application/octet-stream"
)

// registerRoutes 把路由表里的每个路由注册到 m
func registerRoutes(m *Mux, st store.Store, logger zerolog.Logger) {
	m.Handle(router.Root, rootHandler)
	m.Handle(router.Echo, echoHandler)
	m.Handle(router.UserAgent, userAgentHandler)
	m.Handle(router.File, filesHandler(st, logger))
}

// rootHandler 返回 200，没有响应体
func rootHandler(_ *request.Request, _ router.Match) Result {
	return Result{Status: response.StatusOK}
}

func textResult(body string) Result {
	var h response.Headers
	h.Add("Content-Type", contentTypeText)
	return Result{
		Status:   response.StatusOK,
		Headers:  h,
		Body:     []byte(body),
		Compress: true,
	}
}

// echoHandler 把 /echo/ 之后的内容原样作为纯文本返回
func echoHandler(_ *request.Request, match router.Match) Result {
	if match.Method != MethodGet {
		return notFound()
	}
	return textResult(match.Param(router.ParamString))
}

// userAgentHandler 返回 User-Agent 请求头，没有时返回空字符串
func userAgentHandler(req *request.Request, match router.Match) Result {
	if match.Method != MethodGet {
		return notFound()
	}
	return textResult(req.Headers.Get("User-Agent"))
}

// filesHandler GET 读取文件，POST 覆盖写入文件。
// 存储层的任何错误都返回 404，写入失败也一样
func filesHandler(st store.Store, logger zerolog.Logger) HandlerFunc {
	return func(req *request.Request, match router.Match) Result {
		name := match.Param(router.ParamFilename)

		switch match.Method {
		case MethodGet:
			data, err := st.Read(name)
			if err != nil {
				logger.Debug().Err(err).Str("file", name).Msg("file read failed")
				return notFound()
			}
			var h response.Headers
			h.Add("Content-Type", contentTypeBinary)
			return Result{
				Status:   response.StatusOK,
				Headers:  h,
				Body:     data,
				Compress: true,
			}

		case MethodPost:
			if err := st.Write(name, req.Body); err != nil {
				logger.Warn().Err(err).Str("file", name).Msg("file write failed")
				return notFound()
			}
			return Result{Status: response.StatusCreated}
		}

		return notFound()
	}
}
