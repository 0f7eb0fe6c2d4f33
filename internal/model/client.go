package model

import "github.com/google/uuid"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

type Client struct {
	Base
	Name    string       `gorm:"size:255;not null" json:"name"`
	Email   string       `gorm:"size:255" json:"email"`
	Phone   string       `gorm:"size:50" json:"phone"`
	Company string       `gorm:"size:255" json:"company"`
	Address string       `gorm:"size:500" json:"address"`
	Status  ClientStatus `gorm:"size:16;not null;default:ACTIVE;index" json:"status"`
	UserID  *uuid.UUID   `gorm:"type:uuid;index" json:"userId,omitempty"`
}

// OwnedBy reports whether the client belongs to the given user.
func (c *Client) OwnedBy(userID uuid.UUID) bool {
	return c.UserID != nil && *c.UserID == userID
}
