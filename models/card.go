// models/card.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// CardPriority kart önceliği.
type CardPriority string

const (
	PriorityLow    CardPriority = "low"
	PriorityMedium CardPriority = "medium"
	PriorityHigh   CardPriority = "high"
)

// IsValid önceliğin bilinen değerlerden biri olup olmadığını kontrol eder.
func (p CardPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Card sütuna ait tek bir Kanban kartıdır.
// OrderIndex sütun içindeki sırayı belirler (BoardColumn'daki notlar geçerli).
type Card struct {
	BaseModel
	ColumnID       uint         `gorm:"index;not null"`
	Title          string       `gorm:"type:varchar(200);not null"`
	Description    string       `gorm:"type:text"`
	AssignedUserID *uint        `gorm:"index"` // Opsiyonel atanan kullanıcı
	DueDate        *time.Time   `gorm:"index"` // Opsiyonel termin
	Priority       CardPriority `gorm:"type:varchar(10);not null;default:medium"`
	OrderIndex     int          `gorm:"index;not null;default:0"`
}

// BeforeCreate boş bırakılan önceliği varsayılana çeker.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if err := c.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	return nil
}
