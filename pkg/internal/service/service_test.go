package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	ctxPkg "github.com/yeisme/reportvault/pkg/context"
	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage"
	"github.com/yeisme/reportvault/pkg/internal/storage/attach"
	dbc "github.com/yeisme/reportvault/pkg/internal/storage/db"
)

// testEnv 服务层测试环境：文件库 + 文件系统附件后端.
type testEnv struct {
	ctx         context.Context
	db          *gorm.DB
	attachRoot  string
	productRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := model.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	attachRoot := t.TempDir()
	productRoot := t.TempDir()

	mgr := &storage.Manager{
		DB:           &dbc.Client{DB: gdb},
		Attach:       attach.NewFSStore(attachRoot),
		ProductFiles: attach.NewFSStore(productRoot),
	}

	return &testEnv{
		ctx:         ctxPkg.WithStorageManager(context.Background(), mgr),
		db:          gdb,
		attachRoot:  attachRoot,
		productRoot: productRoot,
	}
}

// filePart 一份上传文件，保持提交顺序.
type filePart struct {
	name    string
	content string
}

// makeFileHeaders 通过真实的 multipart 编解码构造 FileHeader.
func makeFileHeaders(t *testing.T, parts []filePart) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := w.CreateFormFile("files", p.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}

		if _, err := fw.Write([]byte(p.content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}

	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"]
}
