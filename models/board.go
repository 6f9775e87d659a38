// models/board.go
package models

// Board Kanban panosunun ana kaydıdır. Sıralı sütunların sahibidir.
type Board struct {
	BaseModel
	Name          string `gorm:"type:varchar(150);not null"` // İsim için benzersizlik şartı yok
	Description   string `gorm:"type:text"`
	ProjectID     *uint  `gorm:"index"` // Opsiyonel proje bağlantısı
	CreatorUserID uint   `gorm:"index;not null"`

	// GORM İlişkileri
	Columns []BoardColumn `gorm:"foreignKey:BoardID"`
}
