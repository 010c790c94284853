package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The username carries a unique index so
// the database enforces the one-account-per-username invariant.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserName       string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Role   *RoleModel    `gorm:"foreignKey:RoleID"`
	Orders []*OrderModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null"`

	Users []*UserModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
