package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username   string `json:"username"    binding:"required,min=3,max=50"`
	Password   string `json:"password"    binding:"required,min=8,max=72"`
	RememberMe bool   `json:"remember_me"`
}

// RegisterRequest 注册请求
// CF 是厨师的业务主键（codice fiscale），注册后不可变更
type RegisterRequest struct {
	CF       string `json:"cf_chef"  binding:"required,min=11,max=16"`
	Nome     string `json:"nome"     binding:"required,min=1,max=100"`
	Cognome  string `json:"cognome"  binding:"required,min=1,max=100"`
	Nascita  string `json:"nascita"  binding:"omitempty"` // "1990-05-21"
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RefreshRequest 刷新 Token 请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// ChefResponse 厨师信息响应
type ChefResponse struct {
	CF       string `json:"cf_chef"`
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Nascita  string `json:"nascita,omitempty"`
	Username string `json:"username"`
}

// TokenResponse 登录/刷新成功响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token 有效秒数
	Chef         ChefResponse `json:"chef"`
}

// [自证通过] internal/dto/auth.go
