package domain

import "time"

// User models one account. The three capability flags are independent: a
// single account can act as tenant, agent, and landlord at the same time.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Phone        string    `json:"phone,omitempty"`
	IsTenant     bool      `json:"is_tenant" gorm:"default:true"`
	IsAgent      bool      `json:"is_agent" gorm:"default:false"`
	IsLandlord   bool      `json:"is_landlord" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
