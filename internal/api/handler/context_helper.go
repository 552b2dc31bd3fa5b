package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/response"
)

// MustGetChefCF 从 Gin 上下文中安全提取 chef_cf。
// 如果 JWT 中间件未正确注入 chef_cf，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetChefCF(c *gin.Context) (string, bool) {
	v, exists := c.Get("chef_cf")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// ParseIDParam 解析路径中的数字 ID 参数。
// 非法时写入 400 响应并返回 false。
func ParseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.BadRequest(c, 10001, name+" 必须为正整数")
		return 0, false
	}
	return id, true
}
