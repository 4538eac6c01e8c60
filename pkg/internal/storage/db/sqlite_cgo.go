//go:build !no_sqlite && cgo

package db

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeisme/reportvault/pkg/configs"
)

// createSQLiteDialector 创建SQLite dialector (CGo版本).
// SQLite 默认不开外键约束，级联删除依赖它，这里在 DSN 上强制开启.
func createSQLiteDialector(dsn string) gorm.Dialector {
	return sqlite.Open(withForeignKeys(dsn))
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}

	return dsn + "?_foreign_keys=on"
}

// 注册SQLite dialector工厂函数 (CGo版本).
func init() {
	RegisterDialectorFactory(configs.SQLite, createSQLiteDialector)
}
