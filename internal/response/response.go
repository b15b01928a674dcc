// Package response 按字节精确地组装 HTTP/1.1 响应
package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	Version = "HTTP/1.1"
	CRLF    = "\r\n"
)

const (
	StatusOK               = 200
	StatusCreated          = 201
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
)

// ErrUnknownStatus 状态码不在固定的状态表里
var ErrUnknownStatus = errors.New("unknown status")

var reasons = map[int]string{
	StatusOK:               "OK",
	StatusCreated:          "Created",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
}

// Reason 返回状态码对应的原因短语
func Reason(status int) (string, bool) {
	r, ok := reasons[status]
	return r, ok
}

// Field 一个响应头
type Field struct {
	Key   string
	Value string
}

// Headers 按插入顺序保存响应头，写出时也按这个顺序
type Headers []Field

// Add 追加一个响应头
func (h *Headers) Add(key, value string) {
	*h = append(*h, Field{Key: key, Value: value})
}

// Get 返回 key 对应的第一个值
func (h Headers) Get(key string) string {
	for _, f := range h {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Build 依次写出状态行、响应头、计算出的 Content-Length 和响应体
func Build(status int, headers Headers, body []byte) ([]byte, error) {
	reason, ok := Reason(status)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}
	var buf bytes.Buffer
	buf.WriteString(Version + " " + strconv.Itoa(status) + " " + reason + CRLF)
	for _, f := range headers {
		buf.WriteString(f.Key + ": " + f.Value + CRLF)
	}
	buf.WriteString("Content-Length: " + strconv.Itoa(len(body)) + CRLF)
	buf.WriteString(CRLF)
	buf.Write(body)
	return buf.Bytes(), nil
}

// Write 组装响应，一次 Write 写到 w
func Write(w io.Writer, status int, headers Headers, body []byte) (int, error) {
	b, err := Build(status, headers, body)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}
