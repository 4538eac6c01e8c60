// Package service 实现报告系统的业务逻辑，不处理 HTTP 细节.
package service

import "errors"

// 业务错误哨兵，handle 层据此映射 HTTP 状态码.
var (
	// ErrNotFound 查找或变更的对象不存在（报告类型、报告）.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName 报告类型名称冲突，由唯一索引约束触发.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrBadValues 提交的字段值映射不是合法的 JSON 对象.
	ErrBadValues = errors.New("malformed values map")
)
