package attach

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	minio "github.com/minio/minio-go/v7"
)

// S3Store 对象存储附件后端，对象键作为存储路径返回.
type S3Store struct {
	cli    *minio.Client
	bucket string
}

// NewS3Store 创建对象存储后端.
func NewS3Store(cli *minio.Client, bucket string) *S3Store {
	return &S3Store{cli: cli, bucket: bucket}
}

// Save 把每个文件上传为 <ownerKey>/<文件名> 对象.
// 与数据库后端一样，中途失败时已上传的对象不做回收.
func (s *S3Store) Save(ctx context.Context, ownerKey string, files []*multipart.FileHeader) ([]SavedFile, error) {
	if len(files) == 0 {
		return []SavedFile{}, nil
	}

	saved := make([]SavedFile, 0, len(files))

	for _, fh := range files {
		name := safeName(fh.Filename)
		objectKey := path.Join(ownerKey, name)

		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}

		opts := minio.PutObjectOptions{}

		ct := headerContentType(fh)
		if ct != nil {
			opts.ContentType = *ct
		}

		_, err = s.cli.PutObject(ctx, s.bucket, objectKey, src, fh.Size, opts)
		src.Close()

		if err != nil {
			return nil, fmt.Errorf("put object %s: %w", objectKey, err)
		}

		saved = append(saved, SavedFile{
			Filename:    name,
			StoragePath: objectKey,
			ContentType: ct,
		})
	}

	return saved, nil
}
