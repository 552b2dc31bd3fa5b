package apperrors

import "errors"

// 跨模块错误分类哨兵。
// Service 层的具体业务错误通过 fmt.Errorf("...: %w", ErrXxx) 挂到对应分类，
// Handler 层用 errors.Is 判定分类后映射 HTTP 状态码。

var (
	// ErrValidation 入参缺失或非法，在任何 SQL 执行前拦截
	ErrValidation = errors.New("参数校验失败")

	// ErrNotOwner 所有权校验失败：目标存在但不属于当前厨师，
	// 或 owner 限定的 UPDATE/DELETE 影响行数为 0（不区分"不存在"与"非本人"）
	ErrNotOwner = errors.New("无权操作该资源")

	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("记录不存在")
)
