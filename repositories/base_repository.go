// repositories/base_repository.go
package repositories

import (
	"context"
	"errors"

	"pano.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound aranan kayıt bulunamadığında döndürülen sentinel hata.
// Servis katmanı bunu kendi NotFound hatasına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm repository'lerin paylaştığı temel CRUD arayüzü.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	Delete(ctx context.Context, id uint) error
	GetCount() (int64, error)
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns []string
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan
// yeni bir BaseRepository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// SetAllowedSortColumns listelemede izin verilen sıralama sütunlarını belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(cols []string) {
	r.allowedSortColumns = cols
}

// Create yeni kayıt ekler (BaseModel hook'ları context'teki kullanıcıyı işler).
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// FindByID kaydı ID ile bulur.
func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update kaydın verilen alanlarını günceller; kayıt yoksa ErrNotFound döner.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.Update: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete kaydı siler (soft delete); kayıt yoksa ErrNotFound döner.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCount toplam kayıt sayısını döndürür.
func (r *BaseRepository[T]) GetCount() (int64, error) {
	var entity T
	var count int64
	err := r.db.Model(&entity).Count(&count).Error
	return count, err
}
