// repositories/dependency_repository.go
package repositories

import (
	"context"
	"errors"

	"pano.link/configs/configsdatabase"
	"pano.link/models"

	"gorm.io/gorm"
)

// IDependencyRepository kart bağımlılık kenarları için arayüz.
// Not: Kenarlar soft delete yerine kalıcı silinir; silinmiş bir kenarın
// benzersiz (card_id, depends_on_card_id) index'ini işgal etmeye devam
// etmesi aynı bağımlılığın yeniden eklenmesini engellerdi.
type IDependencyRepository interface {
	CreateDependency(ctx context.Context, edge *models.CardDependency) error
	FindDependencyByID(ctx context.Context, id uint) (*models.CardDependency, error)
	DeleteDependency(ctx context.Context, id uint) error
	ListDependenciesByCardID(cardID uint) ([]models.CardDependency, error)
	FindDependsOnCardIDs(cardID uint) ([]uint, error)
	ExistsDependency(cardID, dependsOnCardID uint) (bool, error)
	PurgeForCards(ctx context.Context, cardIDs []uint) error
}

// DependencyRepository IDependencyRepository arayüzünü uygular.
type DependencyRepository struct {
	Db *gorm.DB
}

// NewDependencyRepository yeni bir DependencyRepository örneği oluşturur.
func NewDependencyRepository() IDependencyRepository {
	return NewDependencyRepositoryTx(configsdatabase.GetDB())
}

// NewDependencyRepositoryTx verilen transaction üzerinde çalışan repository oluşturur.
func NewDependencyRepositoryTx(tx *gorm.DB) IDependencyRepository {
	return &DependencyRepository{Db: tx}
}

// CreateDependency yeni kenar ekler.
func (r *DependencyRepository) CreateDependency(ctx context.Context, edge *models.CardDependency) error {
	return r.Db.WithContext(ctx).Create(edge).Error
}

// FindDependencyByID kenarı ID ile bulur.
func (r *DependencyRepository) FindDependencyByID(ctx context.Context, id uint) (*models.CardDependency, error) {
	var edge models.CardDependency
	err := r.Db.WithContext(ctx).First(&edge, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// DeleteDependency kenarı kalıcı olarak siler; yoksa ErrNotFound döner.
func (r *DependencyRepository) DeleteDependency(ctx context.Context, id uint) error {
	result := r.Db.WithContext(ctx).Unscoped().Delete(&models.CardDependency{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDependenciesByCardID kartın bağımlılıklarını, görüntüleme için her iki
// kartın başlıklarıyla birlikte döndürür (okuma tarafı join).
func (r *DependencyRepository) ListDependenciesByCardID(cardID uint) ([]models.CardDependency, error) {
	var edges []models.CardDependency
	err := r.Db.
		Preload("Card").
		Preload("DependsOnCard").
		Where("card_id = ?", cardID).
		Order("id ASC").
		Find(&edges).Error
	return edges, err
}

// FindDependsOnCardIDs kartın çıkış kenarlarının hedef ID'lerini döndürür
// (döngü kontrolündeki graf yürüyüşü için).
func (r *DependencyRepository) FindDependsOnCardIDs(cardID uint) ([]uint, error) {
	var ids []uint
	err := r.Db.Model(&models.CardDependency{}).
		Where("card_id = ?", cardID).
		Pluck("depends_on_card_id", &ids).Error
	return ids, err
}

// ExistsDependency aynı sıralı ikilinin kayıtlı olup olmadığını kontrol eder.
func (r *DependencyRepository) ExistsDependency(cardID, dependsOnCardID uint) (bool, error) {
	var count int64
	err := r.Db.Model(&models.CardDependency{}).
		Where("card_id = ? AND depends_on_card_id = ?", cardID, dependsOnCardID).
		Count(&count).Error
	return count > 0, err
}

// PurgeForCards iki ucundan biri verilen kümede olan tüm kenarları siler.
// Eşleşen kenar olmaması hata değildir; cascade tekrarlandığında no-op olur.
func (r *DependencyRepository) PurgeForCards(ctx context.Context, cardIDs []uint) error {
	if len(cardIDs) == 0 {
		return nil
	}
	return r.Db.WithContext(ctx).Unscoped().
		Where("card_id IN ? OR depends_on_card_id IN ?", cardIDs, cardIDs).
		Delete(&models.CardDependency{}).Error
}

// Arayüz uyumluluğu kontrolü
var _ IDependencyRepository = (*DependencyRepository)(nil)
