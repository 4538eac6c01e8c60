package attach

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// FSStore 文件系统附件后端.
// 目标路径为 <root>/<ownerKey>/<文件基础名>；文件名会去除目录部分，
// 但 ownerKey 本身按原样拼入路径，同名文件直接覆盖.
type FSStore struct {
	root string
}

// NewFSStore 创建文件系统后端，root 为附件根目录.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Save 将上传文件写入分组子目录，返回根目录拼出的路径作为位置令牌.
// 路径按配置原样拼接，根目录为相对路径时令牌也是相对路径.
func (s *FSStore) Save(ctx context.Context, ownerKey string, files []*multipart.FileHeader) ([]SavedFile, error) {
	if len(files) == 0 {
		return []SavedFile{}, nil
	}

	dir := filepath.Join(s.root, ownerKey)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachment dir %s: %w", dir, err)
	}

	saved := make([]SavedFile, 0, len(files))

	for _, fh := range files {
		name := safeName(fh.Filename)

		target := filepath.Join(dir, name)

		if err := s.writeOne(fh, target); err != nil {
			return nil, err
		}

		saved = append(saved, SavedFile{
			Filename:    name,
			StoragePath: target,
			ContentType: headerContentType(fh),
		})
	}

	return saved, nil
}

// writeOne 将单个上传流式写入目标路径，已存在的文件被覆盖.
func (s *FSStore) writeOne(fh *multipart.FileHeader, target string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create attachment file %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write attachment file %s: %w", target, err)
	}

	return nil
}
