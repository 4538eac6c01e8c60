package attach

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/yeisme/reportvault/pkg/internal/model"
)

// DBStore 数据库大对象表附件后端.
//
// 持有独立于调用方事务的 DB 会话：每个文件一条 ReportFile 插入，逐条提交.
// 调用方聚合事务回滚时，这里已提交的行会留下孤儿记录；
// 反过来，读者也可能先看到大对象行、后看到报告行（见 jobs 包的孤儿清理任务）.
type DBStore struct {
	db      *gorm.DB
	entropy io.Reader
}

// NewDBStore 创建数据库后端；db 必须是基础连接而非进行中的事务.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{
		db:      db,
		entropy: rand.Reader,
	}
}

// Save 把每个文件的完整内容读入内存后插入大对象表，
// 返回生成的位置令牌；中途失败时已插入的行保持提交状态.
func (s *DBStore) Save(ctx context.Context, ownerKey string, files []*multipart.FileHeader) ([]SavedFile, error) {
	if len(files) == 0 {
		return []SavedFile{}, nil
	}

	saved := make([]SavedFile, 0, len(files))

	for _, fh := range files {
		name := safeName(fh.Filename)

		content, err := readAll(fh)
		if err != nil {
			return nil, err
		}

		locator, err := s.newLocator()
		if err != nil {
			return nil, fmt.Errorf("generate path locator: %w", err)
		}

		row := model.ReportFile{
			Name:        name,
			Content:     content,
			PathLocator: locator,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("insert report file %s: %w", name, err)
		}

		saved = append(saved, SavedFile{
			Filename:    name,
			StoragePath: row.PathLocator,
			ContentType: headerContentType(fh),
		})
	}

	return saved, nil
}

// newLocator 生成 ULID 位置令牌，形如 rf://01J8ZK…
func (s *DBStore) newLocator() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("rf://%s", id.String()), nil
}

// readAll 读取整个上传内容.
func readAll(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}

	return content, nil
}
