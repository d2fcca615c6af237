// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'auth_accounts' table.
// Username and email are nullable so the partial unique indexes ignore absent values.
type AccountModel struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	Username      *string        `gorm:"type:varchar(255)"`
	Email         *string        `gorm:"type:varchar(255)"`
	PasswordHash  string         `gorm:"type:varchar(255);not null"`
	FirstName     string         `gorm:"type:varchar(100);not null"`
	LastName      string         `gorm:"type:varchar(100);not null"`
	IsActive      bool           `gorm:"column:is_active;not null"`
	Authorities   pq.StringArray `gorm:"type:text[]"`
	TOTPSecret    *string        `gorm:"column:totp_secret;type:varchar(64)"`
	RecoveryCodes pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "auth_accounts"
}
