package model

import "time"

// Session records one login; LogoutTime stays nil until the session is closed.
type Session struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Username   string     `json:"username" gorm:"not null;index"`
	LoginTime  time.Time  `json:"login_time" gorm:"not null"`
	LogoutTime *time.Time `json:"logout_time"`
}

func (Session) TableName() string { return "user_sessions" }
