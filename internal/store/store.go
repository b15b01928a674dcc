// Package store 保存 /files/ 下提供的文件
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrDisabled    = errors.New("file store disabled")
	ErrInvalidName = errors.New("invalid file name")
)

// Store 以文件名为 key 的字节存储，同名文件的并发写入不做协调
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

// New 返回以 dir 为根目录的存储，dir 为空时返回 Disabled
func New(dir string) Store {
	if dir == "" {
		return Disabled{}
	}
	return &Dir{root: dir}
}

// Dir 把文件保存在磁盘目录里
type Dir struct {
	root string
}

// path 把 name 解析到根目录下，跳出根目录的名字直接拒绝
func (d *Dir) path(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	rel := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(rel) || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(d.root, rel), nil
}

// Read 返回 name 的全部内容
func (d *Dir) Read(name string) ([]byte, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Write 用 data 覆盖 name 的内容
func (d *Dir) Write(name string, data []byte) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Disabled 没有配置目录时使用，所有文件都不存在，写入一律拒绝
type Disabled struct{}

func (Disabled) Read(name string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (Disabled) Write(name string, _ []byte) error {
	return fmt.Errorf("%w: cannot write %s", ErrDisabled, name)
}
