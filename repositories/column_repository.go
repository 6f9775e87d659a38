// repositories/column_repository.go
package repositories

import (
	"context"

	"pano.link/configs/configsdatabase"
	"pano.link/models"

	"gorm.io/gorm"
)

// IColumnRepository pano sütunu veritabanı işlemleri için arayüz.
type IColumnRepository interface {
	CreateColumn(ctx context.Context, column *models.BoardColumn) error
	FindColumnByID(ctx context.Context, id uint) (*models.BoardColumn, error)
	UpdateColumn(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	DeleteColumn(ctx context.Context, id uint) error
	ListColumnsByBoardID(boardID uint) ([]models.BoardColumn, error)
	FindColumnIDsByBoardID(boardID uint) ([]uint, error)
	DeleteColumnsByBoardID(ctx context.Context, boardID uint) error
	NextOrderIndex(boardID uint) (int, error)
}

// ColumnRepository IColumnRepository arayüzünü uygular.
type ColumnRepository struct {
	Base *BaseRepository[models.BoardColumn]
	Db   *gorm.DB
}

// NewColumnRepository yeni bir ColumnRepository örneği oluşturur.
func NewColumnRepository() IColumnRepository {
	return NewColumnRepositoryTx(configsdatabase.GetDB())
}

// NewColumnRepositoryTx verilen transaction üzerinde çalışan repository oluşturur.
func NewColumnRepositoryTx(tx *gorm.DB) IColumnRepository {
	base := NewBaseRepository[models.BoardColumn](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "order_index"})
	return &ColumnRepository{Base: base, Db: tx}
}

// CreateColumn yeni sütun ekler.
func (r *ColumnRepository) CreateColumn(ctx context.Context, column *models.BoardColumn) error {
	return r.Base.Create(ctx, column)
}

// FindColumnByID sütunu ID ile bulur.
func (r *ColumnRepository) FindColumnByID(ctx context.Context, id uint) (*models.BoardColumn, error) {
	return r.Base.FindByID(ctx, id)
}

// UpdateColumn sütun alanlarını günceller.
func (r *ColumnRepository) UpdateColumn(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	return r.Base.Update(ctx, id, data, updatedBy)
}

// DeleteColumn sütun kaydını siler (kartların temizliği CascadeService'te).
func (r *ColumnRepository) DeleteColumn(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

// ListColumnsByBoardID panonun sütunlarını (order_index, id) sırasıyla döndürür.
func (r *ColumnRepository) ListColumnsByBoardID(boardID uint) ([]models.BoardColumn, error) {
	var columns []models.BoardColumn
	err := r.Db.
		Where("board_id = ?", boardID).
		Order("order_index ASC, id ASC").
		Find(&columns).Error
	return columns, err
}

// FindColumnIDsByBoardID panonun sütun ID'lerini döndürür (cascade için).
func (r *ColumnRepository) FindColumnIDsByBoardID(boardID uint) ([]uint, error) {
	var ids []uint
	err := r.Db.Model(&models.BoardColumn{}).
		Where("board_id = ?", boardID).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteColumnsByBoardID panonun tüm sütunlarını siler.
// Silinecek sütun olmaması hata değildir (cascade idempotent kalmalı).
func (r *ColumnRepository) DeleteColumnsByBoardID(ctx context.Context, boardID uint) error {
	return r.Db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&models.BoardColumn{}).Error
}

// NextOrderIndex pano içindeki bir sonraki sıra numarasını hesaplar.
// Kardeş küme boşsa MAX yerine -1 kabul edilir, sonuç 0 olur.
// Saf okuma; kalıcılaştırma çağıranın işidir.
func (r *ColumnRepository) NextOrderIndex(boardID uint) (int, error) {
	var maxIndex int
	err := r.Db.Model(&models.BoardColumn{}).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

// Arayüz uyumluluğu kontrolü
var _ IColumnRepository = (*ColumnRepository)(nil)
