package attach_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/reportvault/pkg/internal/storage/attach"
)

// makeFileHeaders 构造 multipart 文件头，键为文件名，值为内容.
func makeFileHeaders(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}

		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	r := multipart.NewReader(&buf, w.Boundary())

	form, err := r.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}

	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"]
}

func TestFSStoreSave(t *testing.T) {
	root := t.TempDir()
	store := attach.NewFSStore(root)

	files := makeFileHeaders(t, map[string]string{"report.pdf": "pdf-bytes"})

	saved, err := store.Save(context.Background(), "PC-7", files)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(saved) != 1 {
		t.Fatalf("expected 1 saved file, got %d", len(saved))
	}

	want := filepath.Join(root, "PC-7", "report.pdf")
	if saved[0].StoragePath != want {
		t.Errorf("storage path = %q, want %q", saved[0].StoragePath, want)
	}

	if saved[0].Filename != "report.pdf" {
		t.Errorf("filename = %q, want report.pdf", saved[0].Filename)
	}

	content, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}

	if string(content) != "pdf-bytes" {
		t.Errorf("content = %q, want pdf-bytes", content)
	}
}

func TestFSStoreEmptyInput(t *testing.T) {
	store := attach.NewFSStore(t.TempDir())

	saved, err := store.Save(context.Background(), "PC-7", nil)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(saved) != 0 {
		t.Errorf("expected no saved files, got %d", len(saved))
	}
}

func TestFSStoreOverwrite(t *testing.T) {
	root := t.TempDir()
	store := attach.NewFSStore(root)

	first := makeFileHeaders(t, map[string]string{"a.txt": "old"})
	if _, err := store.Save(context.Background(), "k", first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := makeFileHeaders(t, map[string]string{"a.txt": "new"})
	if _, err := store.Save(context.Background(), "k", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "k", "a.txt"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	if string(content) != "new" {
		t.Errorf("content = %q, want new", content)
	}
}

func TestFSStoreStripsClientPath(t *testing.T) {
	root := t.TempDir()
	store := attach.NewFSStore(root)

	files := makeFileHeaders(t, map[string]string{"../../etc/name.txt": "x"})

	saved, err := store.Save(context.Background(), "k", files)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if saved[0].Filename != "name.txt" {
		t.Errorf("filename = %q, want name.txt", saved[0].Filename)
	}

	if _, err := os.Stat(filepath.Join(root, "k", "name.txt")); err != nil {
		t.Errorf("expected file under root: %v", err)
	}
}
