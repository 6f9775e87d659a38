// repositories/board_repository.go
package repositories

import (
	"context"
	"errors"
	"strings"

	"pano.link/configs/configsdatabase"
	"pano.link/configs/configslog"
	"pano.link/models"
	"pano.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IBoardRepository pano veritabanı işlemleri için arayüz.
type IBoardRepository interface {
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoardByID(id uint) (*models.Board, error)     // Sütunlar ve kartlar sıralı preload edilir
	FindBoardByID(ctx context.Context, id uint) (*models.Board, error) // Preload'suz, varlık kontrolü için
	UpdateBoard(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	DeleteBoard(ctx context.Context, id uint) error
	FindAllBoardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Board, int64, error)
	GetBoardCount() (int64, error)
}

// BoardRepository IBoardRepository arayüzünü uygular.
type BoardRepository struct {
	Base *BaseRepository[models.Board]
	Db   *gorm.DB // Preload ve özel sorgular için direkt erişim
}

// NewBoardRepository yeni bir BoardRepository örneği oluşturur.
func NewBoardRepository() IBoardRepository {
	db := configsdatabase.GetDB()
	return NewBoardRepositoryTx(db)
}

// NewBoardRepositoryTx verilen transaction üzerinde çalışan repository oluşturur.
func NewBoardRepositoryTx(tx *gorm.DB) IBoardRepository {
	base := NewBaseRepository[models.Board](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &BoardRepository{Base: base, Db: tx}
}

// CreateBoard yeni pano oluşturur.
func (r *BoardRepository) CreateBoard(ctx context.Context, board *models.Board) error {
	return r.Base.Create(ctx, board)
}

// GetBoardByID panoyu sütunları ve kartlarıyla birlikte getirir.
// Sütunlar ve kartlar (order_index, id) ikilisine göre sıralanır;
// çift order_index durumunda id deterministik tie-break sağlar.
func (r *BoardRepository) GetBoardByID(id uint) (*models.Board, error) {
	var board models.Board
	err := r.Db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Preload("Columns.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		First(&board, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindBoardByID panoyu ilişkisiz getirir (varlık kontrolü).
func (r *BoardRepository) FindBoardByID(ctx context.Context, id uint) (*models.Board, error) {
	return r.Base.FindByID(ctx, id)
}

// UpdateBoard pano alanlarını günceller.
func (r *BoardRepository) UpdateBoard(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	return r.Base.Update(ctx, id, data, updatedBy)
}

// DeleteBoard pano kaydını siler. Alt kayıtların temizliği servis
// katmanındaki CascadeService'in sorumluluğundadır.
func (r *BoardRepository) DeleteBoard(ctx context.Context, id uint) error {
	return r.Base.Delete(ctx, id)
}

// FindAllBoardsByUserIDPaginated kullanıcının panolarını sayfalayarak listeler.
func (r *BoardRepository) FindAllBoardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Board, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz User ID")
	}
	var results []models.Board
	var totalCount int64

	query := r.Db.Model(&models.Board{}).Where("creator_user_id = ?", userID)

	if params.Name != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}
	allowedSortColumns := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"name":       "name",
	}
	orderColumn := "created_at"
	if dbCol, ok := allowedSortColumns[params.SortBy]; ok {
		orderColumn = dbCol
	}
	query = query.Order(orderColumn + " " + orderBy)

	offset := params.CalculateOffset()
	err := query.Limit(params.PerPage).Offset(offset).Find(&results).Error
	if err != nil {
		configslog.Log.Error("FindAllBoardsByUserIDPaginated: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, 0, err
	}
	return results, totalCount, nil
}

// GetBoardCount toplam pano sayısını alır.
func (r *BoardRepository) GetBoardCount() (int64, error) {
	return r.Base.GetCount()
}

// Arayüz uyumluluğu kontrolü
var _ IBoardRepository = (*BoardRepository)(nil)
