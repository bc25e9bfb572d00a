// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RecruiterModel mirrors the 'recruiters' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The email column stores the lower-cased address; uniqueness is therefore case-insensitive.
type RecruiterModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string     `gorm:"type:varchar(255);unique;not null"`
	Name           string     `gorm:"type:varchar(100)"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"`
	EmailVerified  bool       `gorm:"not null;default:false"`
	EmailOTP       *string    `gorm:"type:varchar(6)"`
	EmailOTPExpiry *time.Time ``

	Phone          string `gorm:"type:varchar(32)"`
	Designation    string `gorm:"type:varchar(100)"`
	CompanyName    string `gorm:"type:varchar(255)"`
	CompanyLogo    string `gorm:"type:text"`
	Website        string `gorm:"type:varchar(255)"`
	Industry       string `gorm:"type:varchar(100)"`
	MinCompanySize *int
	MaxCompanySize *int
	Country        string `gorm:"type:varchar(100)"`
	State          string `gorm:"type:varchar(100)"`
	City           string `gorm:"type:varchar(100)"`
	Zip            string `gorm:"type:varchar(20)"`
	Address        string `gorm:"type:text"`

	Verified  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecruiterModel) TableName() string {
	return "recruiters"
}
