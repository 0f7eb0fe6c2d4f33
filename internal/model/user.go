package model

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleCommercial Role = "COMMERCIAL"
)

type User struct {
	Base
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role         Role   `gorm:"size:16;not null;default:COMMERCIAL" json:"role"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}
