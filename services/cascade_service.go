// services/cascade_service.go
package services

import (
	"context"

	"pano.link/configs/configslog"
	"pano.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICascadeService çok seviyeli silme işlemlerini yönetir:
// pano -> sütunlar -> kartlar -> bağımlılık kenarları.
// Tüm metodlar çağıranın transaction'ı içinde çalışır; sıra her zaman
// kenarlar -> kartlar -> sütunlar şeklindedir ki işlem yarıda kalsa bile
// hiçbir kenar var olmayan bir karta işaret etmesin.
type ICascadeService interface {
	OnDeleteBoard(ctx context.Context, tx *gorm.DB, boardID uint) error
	OnDeleteColumn(ctx context.Context, tx *gorm.DB, columnID uint) error
	OnDeleteCard(ctx context.Context, tx *gorm.DB, cardID uint) error
}

// CascadeService ICascadeService arayüzünü uygular.
type CascadeService struct{}

// NewCascadeService yeni bir CascadeService örneği oluşturur.
func NewCascadeService() ICascadeService {
	return &CascadeService{}
}

// OnDeleteBoard panonun altındaki her şeyi temizler.
// "Çocuk yoksa" her adım no-op olduğundan tekrar çağrılması güvenlidir.
func (s *CascadeService) OnDeleteBoard(ctx context.Context, tx *gorm.DB, boardID uint) error {
	columnRepo := repositories.NewColumnRepositoryTx(tx)
	cardRepo := repositories.NewCardRepositoryTx(tx)
	depRepo := repositories.NewDependencyRepositoryTx(tx)

	columnIDs, err := columnRepo.FindColumnIDsByBoardID(boardID)
	if err != nil {
		configslog.Log.Error("Cascade: pano sütunları toplanamadı", zap.Uint("board_id", boardID), zap.Error(err))
		return err
	}

	cardIDs, err := cardRepo.FindCardIDsByColumnIDs(columnIDs)
	if err != nil {
		configslog.Log.Error("Cascade: sütun kartları toplanamadı", zap.Uint("board_id", boardID), zap.Error(err))
		return err
	}

	// Önce kenarlar, sonra kartlar, sonra sütunlar.
	if err := depRepo.PurgeForCards(ctx, cardIDs); err != nil {
		configslog.Log.Error("Cascade: bağımlılık kenarları temizlenemedi", zap.Uint("board_id", boardID), zap.Error(err))
		return err
	}
	if err := cardRepo.DeleteCardsByColumnIDs(ctx, columnIDs); err != nil {
		configslog.Log.Error("Cascade: kartlar silinemedi", zap.Uint("board_id", boardID), zap.Error(err))
		return err
	}
	if err := columnRepo.DeleteColumnsByBoardID(ctx, boardID); err != nil {
		configslog.Log.Error("Cascade: sütunlar silinemedi", zap.Uint("board_id", boardID), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Cascade tamamlandı: pano %d altında %d sütun, %d kart temizlendi.",
		boardID, len(columnIDs), len(cardIDs))
	return nil
}

// OnDeleteColumn tek sütuna bağlı kartları ve kenarlarını temizler.
func (s *CascadeService) OnDeleteColumn(ctx context.Context, tx *gorm.DB, columnID uint) error {
	cardRepo := repositories.NewCardRepositoryTx(tx)
	depRepo := repositories.NewDependencyRepositoryTx(tx)

	cardIDs, err := cardRepo.FindCardIDsByColumnIDs([]uint{columnID})
	if err != nil {
		configslog.Log.Error("Cascade: sütun kartları toplanamadı", zap.Uint("column_id", columnID), zap.Error(err))
		return err
	}

	if err := depRepo.PurgeForCards(ctx, cardIDs); err != nil {
		configslog.Log.Error("Cascade: bağımlılık kenarları temizlenemedi", zap.Uint("column_id", columnID), zap.Error(err))
		return err
	}
	if err := cardRepo.DeleteCardsByColumnIDs(ctx, []uint{columnID}); err != nil {
		configslog.Log.Error("Cascade: kartlar silinemedi", zap.Uint("column_id", columnID), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Cascade tamamlandı: sütun %d altında %d kart temizlendi.", columnID, len(cardIDs))
	return nil
}

// OnDeleteCard kartın iki yöndeki tüm bağımlılık kenarlarını temizler.
func (s *CascadeService) OnDeleteCard(ctx context.Context, tx *gorm.DB, cardID uint) error {
	depRepo := repositories.NewDependencyRepositoryTx(tx)

	if err := depRepo.PurgeForCards(ctx, []uint{cardID}); err != nil {
		configslog.Log.Error("Cascade: kart kenarları temizlenemedi", zap.Uint("card_id", cardID), zap.Error(err))
		return err
	}
	return nil
}

var _ ICascadeService = (*CascadeService)(nil)
