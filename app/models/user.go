package models

import "time"

// User is a stored admin credential.
type User struct {
	ID        uint      `gorm:"primaryKey"                    json:"id"`
	Username  string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password  string    `gorm:"size:255;not null"             json:"-"` // bcrypt hash, never serialised
	CreatedAt time.Time `gorm:"autoCreateTime"                json:"createdAt"`
}
