// Package model holds the GORM persistence models, kept separate from the
// domain entities so storage tags never leak into the domain layer.
package model

import "time"

// UserModel mirrors the 'users' table. The id is generated by the store
// (BIGSERIAL); email uniqueness is enforced by the table constraint.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
