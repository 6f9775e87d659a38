// models/project.go
package models

// Project panoların opsiyonel olarak bağlanabildiği proje kaydı.
// Proje CRUD'u bu çekirdeğin kapsamı dışındadır; sadece referans için tutulur.
type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);not null"`
	Description string `gorm:"type:text"`
	OwnerUserID uint   `gorm:"index;not null"`
}
