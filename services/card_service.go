// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pano.link/configs/configsdatabase"
	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound        CardServiceError = "kart bulunamadı"
	ErrCardCreationFailed  CardServiceError = "kart oluşturulamadı"
	ErrCardUpdateFailed    CardServiceError = "kart güncellenemedi"
	ErrCardDeletionFailed  CardServiceError = "kart silinemedi"
	ErrCrdInvalidInput     CardServiceError = "geçersiz girdi verisi"
	ErrCardTitleRequired   CardServiceError = "kart başlığı zorunludur"
	ErrCardInvalidPriority CardServiceError = "geçersiz öncelik değeri"
)

// CardCreateInput yeni kart girdisi.
type CardCreateInput struct {
	Title          string
	Description    string
	AssignedUserID *uint
	DueDate        *time.Time
	Priority       models.CardPriority // Boşsa medium kabul edilir
}

// CardUpdateInput kısmi güncelleme girdisi; nil alanlar mevcut değeri korur.
// ColumnID kartı başka sütuna taşır; OrderIndex açık sıra atamasıdır
// (diğer kartlar yeniden numaralandırılmaz, çift index tolere edilir).
type CardUpdateInput struct {
	Title          *string
	Description    *string
	ColumnID       *uint
	AssignedUserID *uint
	DueDate        *time.Time
	Priority       *models.CardPriority
	OrderIndex     *int
}

// ICardService kart işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, userID uint, columnID uint, input CardCreateInput) (*models.Card, error)
	UpdateCard(ctx context.Context, id uint, userID uint, input CardUpdateInput) (*models.Card, error)
	DeleteCard(ctx context.Context, id uint, userID uint) error
	ListCards(ctx context.Context, columnID uint) ([]models.Card, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo       repositories.ICardRepository
	columnRepo repositories.IColumnRepository
	cascade    ICascadeService
	db         *gorm.DB
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	db := configsdatabase.GetDB()
	return &CardService{
		repo:       repositories.NewCardRepository(),
		columnRepo: repositories.NewColumnRepository(),
		cascade:    NewCascadeService(),
		db:         db,
	}
}

// CreateCard sütuna yeni kart ekler. Öncelik boşsa medium; sıra numarası
// aynı transaction içinde MAX(order_index)+1 olarak hesaplanır.
func (s *CardService) CreateCard(ctx context.Context, userID uint, columnID uint, input CardCreateInput) (*models.Card, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, ErrCardTitleRequired)
	}
	if columnID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz sütun veya kullanıcı ID", ErrCrdInvalidInput)
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrCardInvalidPriority, priority)
	}

	var created *models.Card
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		columnRepoTx := repositories.NewColumnRepositoryTx(tx)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		// a. Sütun var mı?
		if _, err := columnRepoTx.FindColumnByID(txCtx, columnID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrColumnNotFound
			}
			return err
		}

		// b. Sıra numarasını hesapla ve kaydet
		nextIndex, err := cardRepoTx.NextOrderIndex(columnID)
		if err != nil {
			configslog.Log.Error("CreateCard: sıra numarası hesaplanamadı", zap.Uint("column_id", columnID), zap.Error(err))
			return ErrCardCreationFailed
		}

		card := models.Card{
			ColumnID:       columnID,
			Title:          input.Title,
			Description:    input.Description,
			AssignedUserID: input.AssignedUserID,
			DueDate:        input.DueDate,
			Priority:       priority,
			OrderIndex:     nextIndex,
		}
		if err := cardRepoTx.CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kart oluşturulurken hata", zap.Uint("column_id", columnID), zap.Error(err))
			return ErrCardCreationFailed
		}
		created = &card
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Kart başarıyla oluşturuldu: ID %d, Sütun %d, Sıra %d", created.ID, columnID, created.OrderIndex)
	return created, nil
}

// UpdateCard kartı kısmi olarak günceller; belirtilmeyen alanlar korunur.
// Sütun değişikliğinde hedef sütunun varlığı doğrulanır.
func (s *CardService) UpdateCard(ctx context.Context, id uint, userID uint, input CardUpdateInput) (*models.Card, error) {
	if id == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya kullanıcı ID", ErrCrdInvalidInput)
	}
	if input.Title != nil && *input.Title == "" {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, ErrCardTitleRequired)
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrCardInvalidPriority, *input.Priority)
	}
	if input.OrderIndex != nil && *input.OrderIndex < 0 {
		return nil, fmt.Errorf("%w: sıra numarası negatif olamaz", ErrCrdInvalidInput)
	}

	var updated *models.Card
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		columnRepoTx := repositories.NewColumnRepositoryTx(tx)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		var existing models.Card
		err := lockForUpdate(tx).First(&existing, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		data := map[string]interface{}{}
		if input.Title != nil {
			data["title"] = *input.Title
		}
		if input.Description != nil {
			data["description"] = *input.Description
		}
		if input.ColumnID != nil && *input.ColumnID != existing.ColumnID {
			if _, err := columnRepoTx.FindColumnByID(txCtx, *input.ColumnID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrColumnNotFound
				}
				return err
			}
			data["column_id"] = *input.ColumnID
		}
		if input.AssignedUserID != nil {
			data["assigned_user_id"] = *input.AssignedUserID
		}
		if input.DueDate != nil {
			data["due_date"] = *input.DueDate
		}
		if input.Priority != nil {
			data["priority"] = *input.Priority
		}
		if input.OrderIndex != nil {
			data["order_index"] = *input.OrderIndex
		}

		if len(data) > 0 {
			if err := cardRepoTx.UpdateCard(txCtx, id, data, userID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrCardNotFound
				}
				configslog.Log.Error("Kart güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
				return ErrCardUpdateFailed
			}
		}

		result, err := cardRepoTx.FindCardByID(txCtx, id)
		if err != nil {
			return err
		}
		updated = result
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Kart başarıyla güncellendi: ID %d", id)
	return updated, nil
}

// DeleteCard kartı ve iki yöndeki bağımlılık kenarlarını TEK BİR
// TRANSACTION içinde siler (önce kenarlar, sonra kart).
func (s *CardService) DeleteCard(ctx context.Context, id uint, userID uint) error {
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		var cardToDelete models.Card
		err := lockForUpdate(tx).First(&cardToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("DeleteCard: Kayıt bulunamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		if err := s.cascade.OnDeleteCard(txCtx, tx, id); err != nil {
			return ErrCardDeletionFailed
		}
		if err := cardRepoTx.DeleteCard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kart silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Kart ve bağımlılık kenarları başarıyla silindi: ID %d", id)
	return nil
}

// ListCards sütunun kartlarını (order_index, id) sırasıyla döndürür.
func (s *CardService) ListCards(ctx context.Context, columnID uint) ([]models.Card, error) {
	if columnID == 0 {
		return nil, fmt.Errorf("%w: geçersiz sütun ID", ErrCrdInvalidInput)
	}
	if _, err := s.columnRepo.FindColumnByID(ctx, columnID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	cards, err := s.repo.ListCardsByColumnID(columnID)
	if err != nil {
		configslog.Log.Error("Kartlar listelenirken hata", zap.Uint("column_id", columnID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

var _ ICardService = (*CardService)(nil)
