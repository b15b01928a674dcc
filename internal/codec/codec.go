// Package codec 协商并应用响应的 Content-Encoding
package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"
)

// Scheme 服务器支持的内容编码
type Scheme int

const (
	Identity Scheme = iota
	Gzip
)

// Name 返回 Content-Encoding 的值，identity 返回空字符串
func (s Scheme) Name() string {
	if s == Gzip {
		return "gzip"
	}
	return ""
}

// Negotiate Accept-Encoding 按逗号分隔，其中有 gzip 就选 gzip，否则用 Identity。
// 忽略 q 值
func Negotiate(acceptEncoding string) Scheme {
	for _, c := range strings.Split(acceptEncoding, ",") {
		token, _, _ := strings.Cut(c, ";")
		if strings.EqualFold(strings.TrimSpace(token), "gzip") {
			return Gzip
		}
	}
	return Identity
}

// Encode 按 scheme 编码 body，Identity 原样返回
func Encode(body []byte, scheme Scheme) ([]byte, error) {
	if scheme != Gzip {
		return body, nil
	}
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(body); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode Encode 的逆操作
func Decode(body []byte, scheme Scheme) ([]byte, error) {
	if scheme != Gzip {
		return body, nil
	}
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer gr.Close()
	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("gzip read: %w", err)
	}
	return out, nil
}
