// models/card_dependency.go
package models

// CardDependency "CardID kartı DependsOnCardID kartına bağımlıdır" yönlü kenarı.
// Kenar kümesi yönlü graf olarak her işlemden sonra asiklik kalmalıdır;
// aynı sıralı (card_id, depends_on_card_id) ikilisi tekrarlanamaz.
// Benzersiz composite index, servis katmanındaki kontrolün veritabanı
// seviyesindeki güvencesidir.
type CardDependency struct {
	BaseModel
	CardID          uint `gorm:"uniqueIndex:idx_card_dependency_pair;index;not null"`
	DependsOnCardID uint `gorm:"uniqueIndex:idx_card_dependency_pair;index;not null"`

	// GORM İlişkileri (okuma tarafında kart başlıkları için)
	Card          *Card `gorm:"foreignKey:CardID"`
	DependsOnCard *Card `gorm:"foreignKey:DependsOnCardID"`
}
