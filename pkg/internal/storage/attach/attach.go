// Package attach 提供报告附件的存储后端抽象.
//
// 三种后端实现同一个 Store 能力接口，由调用方显式选择：
//   - FSStore：文件系统目录，产品全流程报告使用
//   - DBStore：数据库大对象表，通用报告的默认后端
//   - S3Store：MinIO 对象存储，通用报告的可选后端
//
// Save 返回每个文件的元数据记录（原始文件名、位置令牌、内容类型），
// 输入为空时返回空切片且无任何副作用.
package attach

import (
	"context"
	"mime/multipart"
	"path/filepath"
)

// SavedFile 单个已持久化文件的元数据.
type SavedFile struct {
	Filename    string  // 原始文件名（已去除路径部分）
	StoragePath string  // 后端相关的位置令牌
	ContentType *string // 客户端声明的 MIME 类型，未提供时为 nil
}

// Store 附件存储能力接口.
type Store interface {
	// Save 持久化一组上传文件，按输入顺序返回元数据记录.
	// ownerKey 的含义由后端决定：FSStore 用作分组子目录，
	// DBStore/S3Store 用作对象键前缀或忽略.
	Save(ctx context.Context, ownerKey string, files []*multipart.FileHeader) ([]SavedFile, error)
}

// safeName 去除客户端文件名中的目录部分，只保留基础名.
func safeName(name string) string {
	return filepath.Base(name)
}

// headerContentType 取出表单头里声明的 Content-Type，空值返回 nil.
func headerContentType(fh *multipart.FileHeader) *string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}

	return &ct
}
