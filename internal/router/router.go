// Package router 用固定的路由表匹配请求路径
package router

import "strings"

// HandlerID 标识由哪个处理函数处理请求
type HandlerID int

const (
	NoMatch HandlerID = iota
	Root
	UserAgent
	Echo
	File
)

func (id HandlerID) String() string {
	switch id {
	case Root:
		return "root"
	case UserAgent:
		return "user-agent"
	case Echo:
		return "echo"
	case File:
		return "file"
	default:
		return "no-match"
	}
}

// 前缀路由捕获的参数名
const (
	ParamString   = "string"
	ParamFilename = "filename"
)

// Match 一次路由的结果
type Match struct {
	Handler HandlerID
	Method  string
	Params  map[string]string
}

// Param 返回 name 对应的参数值，没有时返回空字符串
func (m Match) Param(name string) string {
	return m.Params[name]
}

type matcher func(path string) (Match, bool)

func exact(path string, id HandlerID) matcher {
	return func(p string) (Match, bool) {
		if p != path {
			return Match{}, false
		}
		return Match{Handler: id}, true
	}
}

// prefix 捕获前缀之后的全部内容，包括斜杠。剩余部分为空时不匹配
func prefix(prefix, param string, id HandlerID) matcher {
	return func(p string) (Match, bool) {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok || rest == "" {
			return Match{}, false
		}
		return Match{Handler: id, Params: map[string]string{param: rest}}, true
	}
}

// rules 从上到下匹配，第一个命中的生效
var rules = []matcher{
	exact("/", Root),
	exact("/user-agent", UserAgent),
	prefix("/echo/", ParamString, Echo),
	prefix("/files/", ParamFilename, File),
}

// Route 用路由表匹配 path。方法只记录在 Match 上，由处理函数自己限制
func Route(method, path string) Match {
	for _, rule := range rules {
		if m, ok := rule(path); ok {
			m.Method = method
			return m
		}
	}
	return Match{Handler: NoMatch, Method: method}
}
