package model

import "github.com/google/uuid"

type ProspectStage string

const (
	ProspectStageNew       ProspectStage = "NEW"
	ProspectStageContacted ProspectStage = "CONTACTED"
	ProspectStageQualified ProspectStage = "QUALIFIED"
	ProspectStageWon       ProspectStage = "WON"
	ProspectStageLost      ProspectStage = "LOST"
)

type Prospect struct {
	Base
	Name    string        `gorm:"size:255;not null" json:"name"`
	Email   string        `gorm:"size:255" json:"email"`
	Phone   string        `gorm:"size:50" json:"phone"`
	Company string        `gorm:"size:255" json:"company"`
	Source  string        `gorm:"size:100" json:"source"`
	Notes   string        `gorm:"type:text" json:"notes"`
	Stage   ProspectStage `gorm:"size:16;not null;default:NEW;index" json:"stage"`
	UserID  *uuid.UUID    `gorm:"type:uuid;index" json:"userId,omitempty"`
}
