// repositories/card_repository.go
package repositories

import (
	"context"

	"pano.link/configs/configsdatabase"
	"pano.link/models"

	"gorm.io/gorm"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	FindCardByID(ctx context.Context, id uint) (*models.Card, error)
	UpdateCard(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	DeleteCard(ctx context.Context, id uint) error
	ListCardsByColumnID(columnID uint) ([]models.Card, error)
	FindCardIDsByColumnIDs(columnIDs []uint) ([]uint, error)
	DeleteCardsByColumnIDs(ctx context.Context, columnIDs []uint) error
	NextOrderIndex(columnID uint) (int, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	Base *BaseRepository[models.Card]
	Db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	return NewCardRepositoryTx(configsdatabase.GetDB())
}

// NewCardRepositoryTx verilen transaction üzerinde çalışan repository oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "order_index", "due_date", "priority"})
	return &CardRepository{Base: base, Db: tx}
}

// CreateCard yeni kart ekler.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	return r.Base.Create(ctx, card)
}

// FindCardByID kartı ID ile bulur.
func (r *CardRepository) FindCardByID(ctx context.Context, id uint) (*models.Card, error) {
	return r.Base.FindByID(ctx, id)
}

// UpdateCard kart alanlarını günceller.
func (r *CardRepository) UpdateCard(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	return r.Base.Update(ctx, id, data, updatedBy)
}

// DeleteCard kart kaydını siler (bağımlılık temizliği CascadeService'te).
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

// ListCardsByColumnID sütunun kartlarını (order_index, id) sırasıyla döndürür.
func (r *CardRepository) ListCardsByColumnID(columnID uint) ([]models.Card, error) {
	var cards []models.Card
	err := r.Db.
		Where("column_id = ?", columnID).
		Order("order_index ASC, id ASC").
		Find(&cards).Error
	return cards, err
}

// FindCardIDsByColumnIDs verilen sütunlardaki tüm kart ID'lerini döndürür.
func (r *CardRepository) FindCardIDsByColumnIDs(columnIDs []uint) ([]uint, error) {
	if len(columnIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.Db.Model(&models.Card{}).
		Where("column_id IN ?", columnIDs).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteCardsByColumnIDs verilen sütunlardaki tüm kartları siler.
// Silinecek kart olmaması hata değildir (cascade idempotent kalmalı).
func (r *CardRepository) DeleteCardsByColumnIDs(ctx context.Context, columnIDs []uint) error {
	if len(columnIDs) == 0 {
		return nil
	}
	return r.Db.WithContext(ctx).
		Where("column_id IN ?", columnIDs).
		Delete(&models.Card{}).Error
}

// NextOrderIndex sütun içindeki bir sonraki sıra numarasını hesaplar.
// Kardeş küme boşsa MAX yerine -1 kabul edilir, sonuç 0 olur.
func (r *CardRepository) NextOrderIndex(columnID uint) (int, error) {
	var maxIndex int
	err := r.Db.Model(&models.Card{}).
		Where("column_id = ?", columnID).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
