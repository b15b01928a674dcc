package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const readChunkSize = 4096

// Read 从 r 中不断读取，直到拿到完整的请求（请求头 + 声明长度的请求体）。
// 对端提前关闭、请求超过 maxSize、或声明的 Content-Length 超过 maxSize，
// 都返回 ErrMalformedRequest。一个字节都没读到就关闭时原样返回 io.EOF。
func Read(r io.Reader, maxSize int) (*Request, error) {
	var (
		buf       []byte
		req       *Request
		cl        int
		bodyStart int
		scanned   int // buf[:scanned] 中已经确认没有空行分隔符
	)
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if maxSize > 0 && len(buf) > maxSize {
				return nil, fmt.Errorf("%w: request exceeds %d bytes", ErrMalformedRequest, maxSize)
			}

			if req == nil {
				// 只搜索新数据，往回多看 3 个字节，防止分隔符被切在两次读取之间
				from := max(scanned-(len(headTerminator)-1), 0)
				i := bytes.Index(buf[from:], []byte(headTerminator))
				if i < 0 {
					scanned = len(buf)
				} else {
					end := from + i
					var perr error
					req, cl, perr = parseHead(buf[:end])
					if perr != nil {
						return nil, perr
					}
					bodyStart = end + len(headTerminator)
					if maxSize > 0 && bodyStart+cl > maxSize {
						return nil, fmt.Errorf("%w: declared Content-Length %d exceeds %d bytes", ErrMalformedRequest, cl, maxSize)
					}
				}
			}

			if req != nil && len(buf)-bodyStart >= cl {
				return withBody(req, buf[bodyStart:], cl)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(buf) == 0 {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("%w: connection closed after %d bytes", ErrMalformedRequest, len(buf))
			}
			return nil, fmt.Errorf("error reading request: %w", err)
		}
	}
}
