// models/board_column.go
package models

// BoardColumn panoya ait tek bir sütundur ("Yapılacak", "Tamamlandı" vb.).
// OrderIndex pano içindeki sırayı belirler. Bilinçli olarak unique constraint
// yoktur: manuel sürükle-bırak sıralaması sonrası çift index tolere edilir,
// okuyucular (order_index, id) ikilisine göre sıralar.
type BoardColumn struct {
	BaseModel
	BoardID    uint   `gorm:"index;not null"`
	Name       string `gorm:"type:varchar(100);not null"`
	OrderIndex int    `gorm:"index;not null;default:0"`

	// GORM İlişkileri
	Cards []Card `gorm:"foreignKey:ColumnID"`
}
