//go:build !no_sqlite && !cgo

package db

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/yeisme/reportvault/pkg/configs"
)

// createSQLiteDialector 创建SQLite dialector.
// SQLite 默认不开外键约束，级联删除依赖它，这里在 DSN 上强制开启.
func createSQLiteDialector(dsn string) gorm.Dialector {
	return sqlite.Open(withForeignKeys(dsn))
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}

	return dsn + "?_pragma=foreign_keys(1)"
}

// 注册SQLite dialector工厂函数.
func init() {
	RegisterDialectorFactory(configs.SQLite, createSQLiteDialector)
}
