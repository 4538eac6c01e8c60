// Package storage 聚合报告系统的存储资源：数据库、附件后端、KV 缓存与消息队列.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	dbClient := mgr.GetDBClient()
//	store := mgr.GetAttachStore()
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yeisme/reportvault/pkg/configs"
	"github.com/yeisme/reportvault/pkg/internal/storage/attach"
	dbc "github.com/yeisme/reportvault/pkg/internal/storage/db"
	kvc "github.com/yeisme/reportvault/pkg/internal/storage/kv"
	mqc "github.com/yeisme/reportvault/pkg/internal/storage/mq"
	s3c "github.com/yeisme/reportvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/reportvault/pkg/log"
)

// Manager 聚合所有存储资源.
//
// Attach 是通用报告附件的后端，ProductFiles 是产品全流程报告附件的
// 文件系统目录，两者按配置在 Init 时装配.
type Manager struct {
	DB           *dbc.Client
	S3           *s3c.Client
	KV           *kvc.Client
	MQ           *mqc.Client
	Attach       attach.Store
	ProductFiles *attach.FSStore
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// DB
		dbi, e := dbc.New(ctx)
		if e != nil {
			err = e

			return
		}
		m.DB = dbi

		// S3 仅在附件后端选择对象存储时建立连接
		if cfg.Storage.Attachments.Backend == configs.AttachmentBackendS3 {
			s3i, e := s3c.New(ctx)
			if e != nil {
				err = e

				return
			}
			m.S3 = s3i
		}

		// 附件后端
		m.Attach, err = newAttachStore(cfg, m)
		if err != nil {
			return
		}

		m.ProductFiles = attach.NewFSStore(cfg.Storage.ProductReportDir)

		// KV
		kvi, e := kvc.NewKVClient(ctx)
		if e != nil {
			err = e

			return
		}
		m.KV = kvi

		// MQ 仅在事件发布开启时建立连接
		if cfg.Events.Enabled {
			mqi, e := mqc.New(ctx)
			if e != nil {
				err = e

				return
			}
			m.MQ = mqi
		}

		mgr = m

		nlog.Logger().Info().
			Str("attach_backend", string(cfg.Storage.Attachments.Backend)).
			Bool("events", cfg.Events.Enabled).
			Msg("storage manager initialized")
	})

	return mgr, err
}

// newAttachStore 按配置装配通用报告附件后端.
func newAttachStore(cfg *configs.AppConfig, m *Manager) (attach.Store, error) {
	switch cfg.Storage.Attachments.Backend {
	case configs.AttachmentBackendDB:
		return attach.NewDBStore(m.DB.GetDB()), nil
	case configs.AttachmentBackendS3:
		return attach.NewS3Store(m.S3.Client, cfg.S3.BucketName), nil
	default:
		return nil, fmt.Errorf("unsupported attachment backend: %s", cfg.Storage.Attachments.Backend)
	}
}

// GetS3Client 获取 S3 客户端，后端未启用时返回 nil.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端，事件发布关闭时返回 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// GetAttachStore 获取通用报告附件后端.
func (m *Manager) GetAttachStore() attach.Store {
	return m.Attach
}

// GetProductFileStore 获取产品全流程报告附件目录.
func (m *Manager) GetProductFileStore() *attach.FSStore {
	return m.ProductFiles
}
