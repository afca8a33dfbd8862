package models

// LoginHistory records each successful sign-in
type LoginHistory struct {
	Base
	UserID    string `json:"userId" gorm:"type:varchar(36);index;not null"`
	IPAddress string `json:"ipAddress"`
	Device    string `json:"device"`
}
