// services/column_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"pano.link/configs/configsdatabase"
	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ColumnServiceError özel servis hataları
type ColumnServiceError string

func (e ColumnServiceError) Error() string { return string(e) }

const (
	ErrColumnNotFound       ColumnServiceError = "sütun bulunamadı"
	ErrColumnCreationFailed ColumnServiceError = "sütun oluşturulamadı"
	ErrColumnUpdateFailed   ColumnServiceError = "sütun güncellenemedi"
	ErrColumnDeletionFailed ColumnServiceError = "sütun silinemedi"
	ErrColInvalidInput      ColumnServiceError = "geçersiz girdi verisi"
	ErrColumnNameRequired   ColumnServiceError = "sütun adı zorunludur"
)

// ColumnUpdateInput kısmi güncelleme girdisi; nil alanlar mevcut değeri korur.
// OrderIndex sürükle-bırak sıralaması için açık değer atamasıdır; diğer
// kardeşler yeniden numaralandırılmaz, çift index tolere edilir.
type ColumnUpdateInput struct {
	Name       *string
	OrderIndex *int
}

// IColumnService pano sütunu işlemleri için arayüz.
type IColumnService interface {
	CreateColumn(ctx context.Context, userID uint, boardID uint, name string) (*models.BoardColumn, error)
	UpdateColumn(ctx context.Context, id uint, userID uint, input ColumnUpdateInput) (*models.BoardColumn, error)
	DeleteColumn(ctx context.Context, id uint, userID uint) error
	ListColumns(ctx context.Context, boardID uint) ([]models.BoardColumn, error)
}

// ColumnService IColumnService arayüzünü uygular.
type ColumnService struct {
	repo      repositories.IColumnRepository
	boardRepo repositories.IBoardRepository
	cascade   ICascadeService
	db        *gorm.DB
}

// NewColumnService yeni bir ColumnService örneği oluşturur.
func NewColumnService() IColumnService {
	db := configsdatabase.GetDB()
	return &ColumnService{
		repo:      repositories.NewColumnRepository(),
		boardRepo: repositories.NewBoardRepository(),
		cascade:   NewCascadeService(),
		db:        db,
	}
}

// CreateColumn panoya yeni sütun ekler. Sıra numarası aynı transaction
// içinde MAX(order_index)+1 olarak hesaplanır.
func (s *ColumnService) CreateColumn(ctx context.Context, userID uint, boardID uint, name string) (*models.BoardColumn, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %v", ErrColInvalidInput, ErrColumnNameRequired)
	}
	if boardID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz pano veya kullanıcı ID", ErrColInvalidInput)
	}

	var created *models.BoardColumn
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		boardRepoTx := repositories.NewBoardRepositoryTx(tx)
		columnRepoTx := repositories.NewColumnRepositoryTx(tx)

		// a. Pano var mı?
		if _, err := boardRepoTx.FindBoardByID(txCtx, boardID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		// b. Sıra numarasını hesapla ve kaydet
		nextIndex, err := columnRepoTx.NextOrderIndex(boardID)
		if err != nil {
			configslog.Log.Error("CreateColumn: sıra numarası hesaplanamadı", zap.Uint("board_id", boardID), zap.Error(err))
			return ErrColumnCreationFailed
		}

		column := models.BoardColumn{
			BoardID:    boardID,
			Name:       name,
			OrderIndex: nextIndex,
		}
		if err := columnRepoTx.CreateColumn(txCtx, &column); err != nil {
			configslog.Log.Error("Sütun oluşturulurken hata", zap.Uint("board_id", boardID), zap.Error(err))
			return ErrColumnCreationFailed
		}
		created = &column
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Sütun başarıyla oluşturuldu: ID %d, Pano %d, Sıra %d", created.ID, boardID, created.OrderIndex)
	return created, nil
}

// UpdateColumn sütunu kısmi olarak günceller; belirtilmeyen alanlar korunur.
func (s *ColumnService) UpdateColumn(ctx context.Context, id uint, userID uint, input ColumnUpdateInput) (*models.BoardColumn, error) {
	if id == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya kullanıcı ID", ErrColInvalidInput)
	}
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: %v", ErrColInvalidInput, ErrColumnNameRequired)
	}
	if input.OrderIndex != nil && *input.OrderIndex < 0 {
		return nil, fmt.Errorf("%w: sıra numarası negatif olamaz", ErrColInvalidInput)
	}

	data := map[string]interface{}{}
	if input.Name != nil {
		data["name"] = *input.Name
	}
	if input.OrderIndex != nil {
		data["order_index"] = *input.OrderIndex
	}

	var updated *models.BoardColumn
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		columnRepoTx := repositories.NewColumnRepositoryTx(tx)

		var existing models.BoardColumn
		err := lockForUpdate(tx).First(&existing, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColumnNotFound
			}
			return err
		}

		if len(data) > 0 {
			if err := columnRepoTx.UpdateColumn(txCtx, id, data, userID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrColumnNotFound
				}
				configslog.Log.Error("Sütun güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
				return ErrColumnUpdateFailed
			}
		}

		result, err := columnRepoTx.FindColumnByID(txCtx, id)
		if err != nil {
			return err
		}
		updated = result
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Sütun başarıyla güncellendi: ID %d", id)
	return updated, nil
}

// DeleteColumn sütunu ve altındaki kartları/kenarları TEK BİR TRANSACTION
// içinde siler (sıra: kenarlar -> kartlar -> sütun).
func (s *ColumnService) DeleteColumn(ctx context.Context, id uint, userID uint) error {
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya kullanıcı ID", ErrColInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		columnRepoTx := repositories.NewColumnRepositoryTx(tx)

		var columnToDelete models.BoardColumn
		err := lockForUpdate(tx).First(&columnToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColumnNotFound
			}
			configslog.Log.Error("DeleteColumn: Kayıt bulunamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		if err := s.cascade.OnDeleteColumn(txCtx, tx, id); err != nil {
			return ErrColumnDeletionFailed
		}
		if err := columnRepoTx.DeleteColumn(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrColumnNotFound
			}
			configslog.Log.Error("Sütun silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrColumnDeletionFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Sütun ve alt kayıtları başarıyla silindi: ID %d", id)
	return nil
}

// ListColumns panonun sütunlarını (order_index, id) sırasıyla döndürür.
func (s *ColumnService) ListColumns(ctx context.Context, boardID uint) ([]models.BoardColumn, error) {
	if boardID == 0 {
		return nil, fmt.Errorf("%w: geçersiz pano ID", ErrColInvalidInput)
	}
	if _, err := s.boardRepo.FindBoardByID(ctx, boardID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	columns, err := s.repo.ListColumnsByBoardID(boardID)
	if err != nil {
		configslog.Log.Error("Sütunlar listelenirken hata", zap.Uint("board_id", boardID), zap.Error(err))
		return nil, err
	}
	return columns, nil
}

var _ IColumnService = (*ColumnService)(nil)
