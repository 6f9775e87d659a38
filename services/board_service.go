// services/board_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"pano.link/configs/configsdatabase"
	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/pkg/queryparams"
	"pano.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BoardServiceError özel servis hataları
type BoardServiceError string

func (e BoardServiceError) Error() string { return string(e) }

const (
	ErrBoardNotFound       BoardServiceError = "pano bulunamadı"
	ErrBoardCreationFailed BoardServiceError = "pano oluşturulamadı"
	ErrBoardUpdateFailed   BoardServiceError = "pano güncellenemedi"
	ErrBoardDeletionFailed BoardServiceError = "pano silinemedi"
	ErrBoardForbidden      BoardServiceError = "bu işlem için yetkiniz yok"
	ErrBrdInvalidInput     BoardServiceError = "geçersiz girdi verisi"
	ErrBoardNameRequired   BoardServiceError = "pano adı zorunludur"
)

// BoardUpdateInput kısmi güncelleme girdisi; nil alanlar mevcut değeri korur.
type BoardUpdateInput struct {
	Name        *string
	Description *string
	ProjectID   *uint
}

// IBoardService pano işlemleri için arayüz.
type IBoardService interface {
	CreateBoard(ctx context.Context, creatorUserID uint, name, description string, projectID *uint) (*models.Board, error)
	GetBoardByID(ctx context.Context, id uint) (*models.Board, error)
	GetBoardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateBoard(ctx context.Context, id uint, updatingUserID uint, input BoardUpdateInput) error
	DeleteBoard(ctx context.Context, id uint, deletingUserID uint) error
}

// BoardService IBoardService arayüzünü uygular.
type BoardService struct {
	repo     repositories.IBoardRepository
	userRepo repositories.IUserRepository
	cascade  ICascadeService
	db       *gorm.DB // Transaction yönetimi için
}

// NewBoardService yeni bir BoardService örneği oluşturur.
func NewBoardService() IBoardService {
	db := configsdatabase.GetDB()
	return &BoardService{
		repo:     repositories.NewBoardRepository(),
		userRepo: repositories.NewUserRepository(),
		cascade:  NewCascadeService(),
		db:       db,
	}
}

// contextWithUserID context'e user_id ekler (BaseModel hook'ları için).
func contextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, models.ContextUserIDKey, userID)
}

// CreateBoard yeni bir pano oluşturur. İsim benzersizliği aranmaz.
func (s *BoardService) CreateBoard(ctx context.Context, creatorUserID uint, name, description string, projectID *uint) (*models.Board, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %v", ErrBrdInvalidInput, ErrBoardNameRequired)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrBrdInvalidInput)
	}

	board := models.Board{
		Name:          name,
		Description:   description,
		ProjectID:     projectID,
		CreatorUserID: creatorUserID,
	}

	txCtx := contextWithUserID(ctx, creatorUserID)
	if err := s.repo.CreateBoard(txCtx, &board); err != nil {
		configslog.Log.Error("Pano oluşturulurken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return nil, ErrBoardCreationFailed
	}

	configslog.SLog.Infof("Pano başarıyla oluşturuldu: ID %d, İsim: %s", board.ID, board.Name)
	return &board, nil
}

// GetBoardByID panoyu sıralı sütunları ve kartlarıyla birlikte getirir.
func (s *BoardService) GetBoardByID(ctx context.Context, id uint) (*models.Board, error) {
	board, err := s.repo.GetBoardByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		configslog.Log.Error("GetBoardByID: Repo error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return board, nil
}

// GetBoardsForUserPaginated kullanıcının panolarını sayfalayarak getirir.
func (s *BoardService) GetBoardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrBrdInvalidInput)
	}
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	boards, totalCount, err := s.repo.FindAllBoardsByUserIDPaginated(creatorUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı panoları alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: boards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateBoard pano alanlarını kısmi olarak günceller.
func (s *BoardService) UpdateBoard(ctx context.Context, id uint, updatingUserID uint, input BoardUpdateInput) error {
	if id == 0 || updatingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrBrdInvalidInput)
	}
	if input.Name != nil && *input.Name == "" {
		return fmt.Errorf("%w: %v", ErrBrdInvalidInput, ErrBoardNameRequired)
	}

	data := map[string]interface{}{}
	if input.Name != nil {
		data["name"] = *input.Name
	}
	if input.Description != nil {
		data["description"] = *input.Description
	}
	if input.ProjectID != nil {
		data["project_id"] = *input.ProjectID
	}
	if len(data) == 0 {
		return nil // Güncellenecek alan yok
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, updatingUserID)
		boardRepoTx := repositories.NewBoardRepositoryTx(tx)

		var existing models.Board
		err := lockForUpdate(tx).First(&existing, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		if err := s.checkBoardOwnership(txCtx, tx, &existing, updatingUserID); err != nil {
			return err
		}

		if err := boardRepoTx.UpdateBoard(txCtx, id, data, updatingUserID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrBoardNotFound
			}
			configslog.Log.Error("Pano güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrBoardUpdateFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Pano başarıyla güncellendi: ID %d", id)
	return nil
}

// DeleteBoard panoyu ve altındaki her şeyi TEK BİR TRANSACTION içinde siler.
// Sıra: kenarlar -> kartlar -> sütunlar -> pano (CascadeService).
func (s *BoardService) DeleteBoard(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrBrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, deletingUserID)
		boardRepoTx := repositories.NewBoardRepositoryTx(tx)

		// a. Kaydı kilitli olarak al
		var boardToDelete models.Board
		err := lockForUpdate(tx).First(&boardToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			configslog.Log.Error("DeleteBoard: Kayıt bulunamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		// b. Yetki kontrolü
		if err := s.checkBoardOwnership(txCtx, tx, &boardToDelete, deletingUserID); err != nil {
			return err
		}

		// c. Alt kayıtları temizle, sonra panoyu sil
		if err := s.cascade.OnDeleteBoard(txCtx, tx, id); err != nil {
			return ErrBoardDeletionFailed
		}
		if err := boardRepoTx.DeleteBoard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrBoardNotFound
			}
			configslog.Log.Error("Pano silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrBoardDeletionFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Pano ve alt kayıtları başarıyla silindi: ID %d", id)
	return nil
}

// checkBoardOwnership panoyu sadece sahibi veya sistem kullanıcısı değiştirebilir.
// Pano paylaşımı / takım üyeliği bu çekirdeğin dışında çözülür.
func (s *BoardService) checkBoardOwnership(ctx context.Context, tx *gorm.DB, board *models.Board, userID uint) error {
	userRepoTx := repositories.NewUserRepositoryTx(tx)
	user, err := userRepoTx.FindByID(ctx, userID)
	if err != nil {
		configslog.Log.Warn("Pano yetki kontrolü: kullanıcı bulunamadı", zap.Uint("userID", userID), zap.Error(err))
		return ErrBoardForbidden
	}
	if !user.IsSystem && board.CreatorUserID != userID {
		configslog.Log.Warn("Yetkisiz pano değişikliği denemesi",
			zap.Uint("boardID", board.ID), zap.Uint("userID", userID), zap.Uint("ownerID", board.CreatorUserID))
		return ErrBoardForbidden
	}
	return nil
}

var _ IBoardService = (*BoardService)(nil)
