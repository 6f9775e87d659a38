// models/base.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// hook'lara taşımak için kullanılır (CreatedBy/UpdatedBy/DeletedBy).
const ContextUserIDKey = "user_id"

// BaseModel tüm modellere gömülen ortak alanlar.
// ID, CreatedAt, UpdatedAt, DeletedAt (soft delete), CreatedBy, UpdatedBy, DeletedBy.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint
	DeletedBy uint
}

// userIDFromContext context'teki kullanıcı ID'sini okur; yoksa 0 döner.
func userIDFromContext(tx *gorm.DB) uint {
	if tx.Statement == nil || tx.Statement.Context == nil {
		return 0
	}
	if id, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint); ok {
		return id
	}
	return 0
}

// BeforeCreate CreatedBy alanını context'teki kullanıcı ile doldurur.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID := userIDFromContext(tx); userID != 0 {
		b.CreatedBy = userID
	}
	return nil
}

// BeforeUpdate UpdatedBy alanını context'teki kullanıcı ile doldurur.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID := userIDFromContext(tx); userID != 0 {
		b.UpdatedBy = userID
	}
	return nil
}
