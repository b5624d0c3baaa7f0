package domain

import "gorm.io/gorm"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	IsVerified   bool   `gorm:"not null;default:false" json:"is_verified"`
	// one-time 6-digit code, nil once the account is verified
	VerificationCode *string `json:"-"`
	gorm.Model
}
