package request

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CRLF \r\n 是两个字符组成的序列，结束请求行和每一个请求头
const CRLF = "\r\n"

// headTerminator 空行，分隔请求头和请求体
const headTerminator = CRLF + CRLF

var (
	// ErrMalformedRequest 请求行、请求头或 Content-Length 无法解析
	ErrMalformedRequest = errors.New("malformed request")
	// ErrIncomplete 数据里还没有空行分隔符，或者请求体还没读够
	ErrIncomplete = errors.New("incomplete request")
)

// Header 请求头，key 统一小写保存，查找时大小写不敏感。
// 同名请求头以第一次出现的值为准。
type Header map[string]string

// Get 按大小写不敏感的方式取值
func (h Header) Get(key string) string {
	return h[strings.ToLower(key)]
}

// Lookup 同 Get，额外返回是否存在
func (h Header) Lookup(key string) (string, bool) {
	v, ok := h[strings.ToLower(key)]
	return v, ok
}

func (h Header) add(key, value string) {
	key = strings.ToLower(key)
	if _, ok := h[key]; ok {
		return
	}
	h[key] = value
}

// Request 表示一个解析好的 HTTP/1.1 请求，每个连接构造一次，之后不再修改
type Request struct {
	Method  string
	Path    string
	Version string
	Headers Header
	Body    []byte
}

// contentLength 返回声明的请求体长度，没有该请求头时为 0。
// 只接受纯数字，"+3"、"-1"、"0x10" 都算非法。
func contentLength(h Header) (int, error) {
	cls, ok := h.Lookup("Content-Length")
	if !ok {
		return 0, nil
	}
	v := strings.TrimSpace(cls)
	if v == "" {
		return 0, fmt.Errorf("%w: invalid Content-Length %q", ErrMalformedRequest, cls)
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return 0, fmt.Errorf("%w: invalid Content-Length %q", ErrMalformedRequest, cls)
		}
	}
	cl, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid Content-Length %q", ErrMalformedRequest, cls)
	}
	return cl, nil
}

// Parse 把原始字节解析成 Request，请求体按 Content-Length 截断，多余的字节忽略
func Parse(raw []byte) (*Request, error) {
	end := bytes.Index(raw, []byte(headTerminator))
	if end < 0 {
		return nil, ErrIncomplete
	}
	req, cl, err := parseHead(raw[:end])
	if err != nil {
		return nil, err
	}
	return withBody(req, raw[end+len(headTerminator):], cl)
}

// parseHead 解析请求行和请求头（不含结尾的空行），返回声明的请求体长度
func parseHead(head []byte) (*Request, int, error) {
	lines := strings.Split(string(head), CRLF)
	req, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, 0, err
	}

	req.Headers = make(Header)
	for _, line := range lines[1:] {
		// 按第一个 ": " 分成 key 和 value
		key, value, ok := strings.Cut(line, ": ")
		if !ok || key == "" {
			return nil, 0, fmt.Errorf("%w: invalid header line %q", ErrMalformedRequest, line)
		}
		req.Headers.add(key, value)
	}

	cl, err := contentLength(req.Headers)
	if err != nil {
		return nil, 0, err
	}
	return req, cl, nil
}

// withBody 从 rest 中拷贝 cl 个字节作为请求体
func withBody(req *Request, rest []byte, cl int) (*Request, error) {
	if len(rest) < cl {
		return nil, ErrIncomplete
	}
	req.Body = make([]byte, cl)
	copy(req.Body, rest[:cl])
	return req, nil
}

func parseRequestLine(line string) (*Request, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: invalid request line %q", ErrMalformedRequest, line)
	}
	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: invalid request line %q", ErrMalformedRequest, line)
		}
	}
	if !strings.HasPrefix(fields[1], "/") {
		return nil, fmt.Errorf("%w: invalid path %q", ErrMalformedRequest, fields[1])
	}
	if !strings.HasPrefix(fields[2], "HTTP/") {
		return nil, fmt.Errorf("%w: invalid version %q", ErrMalformedRequest, fields[2])
	}
	return &Request{
		Method:  fields[0],
		Path:    fields[1],
		Version: fields[2],
	}, nil
}
