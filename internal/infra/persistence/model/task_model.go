package model

import (
	"time"
)

// TaskModel mirrors the 'tasks' table. OwnerID references users.id and is
// written exactly once, at insert.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(1000)"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	Priority    string `gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate     *time.Time
	OwnerID     int64 `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
