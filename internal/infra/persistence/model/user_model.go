package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are database-assigned bigserial values.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);unique;not null"`
	FirstName    *string `gorm:"type:varchar(100)"`
	LastName     *string `gorm:"type:varchar(100)"`
	PasswordHash string  `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tasks []TaskModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
