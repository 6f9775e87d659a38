// services/dependency_service.go
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

// DependencyServiceError özel servis hataları
type DependencyServiceError string

func (e DependencyServiceError) Error() string { return string(e) }

const (
	ErrDependencyNotFound       DependencyServiceError = "bağımlılık bulunamadı"
	ErrDependencyCreationFailed DependencyServiceError = "bağımlılık oluşturulamadı"
	ErrDependencyDeletionFailed DependencyServiceError = "bağımlılık silinemedi"
	ErrSelfDependency           DependencyServiceError = "kart kendisine bağımlı olamaz"
	ErrDependencyCycle          DependencyServiceError = "bağımlılık döngü oluşturur"
	ErrDuplicateDependency      DependencyServiceError = "bağımlılık zaten mevcut"
	ErrDepInvalidInput          DependencyServiceError = "geçersiz girdi verisi"
)

// IDependencyService kartlar arası bağımlılık grafını yönetir.
// Kenar kümesi her başarılı işlemden sonra asikliktir; döngü ve tekrar
// kontrolleri kenarı ekleyen transaction'ın içinde yeniden yapılır, böylece
// eşzamanlı iki ekleme bayat bir graf görüntüsü üzerinden döngü kapatamaz.
type IDependencyService interface {
	AddDependency(ctx context.Context, userID uint, cardID, dependsOnCardID uint) (*models.CardDependency, error)
	RemoveDependency(ctx context.Context, userID uint, edgeID uint) error
	ListDependencies(ctx context.Context, cardID uint) ([]models.CardDependency, error)
}

// DependencyService IDependencyService arayüzünü uygular.
type DependencyService struct {
	repo     repositories.IDependencyRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewDependencyService yeni bir DependencyService örneği oluşturur.
func NewDependencyService() IDependencyService {
	db := configsdatabase.GetDB()
	return &DependencyService{
		repo:     repositories.NewDependencyRepository(),
		cardRepo: repositories.NewCardRepository(),
		db:       db,
	}
}

// AddDependency "cardID kartı dependsOnCardID kartına bağımlıdır" kenarını ekler.
// Kontrol sırası: kart varlığı -> self-loop -> döngü -> tekrar.
func (s *DependencyService) AddDependency(ctx context.Context, userID uint, cardID, dependsOnCardID uint) (*models.CardDependency, error) {
	if cardID == 0 || dependsOnCardID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kart veya kullanıcı ID", ErrDepInvalidInput)
	}

	var created *models.CardDependency
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, userID)
		depRepoTx := repositories.NewDependencyRepositoryTx(tx)

		// a. Her iki kartı kilitli olarak al; eşzamanlı AddDependency
		//    çağrıları aynı kartlar üzerinde sıraya girer.
		var cards []models.Card
		err := lockForUpdate(tx).
			Where("id IN ?", []uint{cardID, dependsOnCardID}).
			Order("id ASC"). // Deadlock'a karşı sabit kilitleme sırası
			Find(&cards).Error
		if err != nil {
			return err
		}

		// b. Self-loop: uzunluğu 1 olan döngü, ayrıca kontrol edilir.
		if cardID == dependsOnCardID {
			if len(cards) == 0 {
				return ErrCardNotFound
			}
			return ErrSelfDependency
		}
		if len(cards) != 2 {
			return ErrCardNotFound
		}

		// c. Döngü kontrolü: dependsOnCardID'den cardID'ye yol varsa yeni
		//    kenar döngüyü kapatır.
		cyclic, err := s.wouldCreateCycle(depRepoTx, cardID, dependsOnCardID)
		if err != nil {
			configslog.Log.Error("Döngü kontrolü sırasında hata",
				zap.Uint("card_id", cardID), zap.Uint("depends_on_card_id", dependsOnCardID), zap.Error(err))
			return ErrDependencyCreationFailed
		}
		if cyclic {
			return ErrDependencyCycle
		}

		// d. Aynı sıralı ikili zaten var mı?
		exists, err := depRepoTx.ExistsDependency(cardID, dependsOnCardID)
		if err != nil {
			return ErrDependencyCreationFailed
		}
		if exists {
			return ErrDuplicateDependency
		}

		// e. Kenarı kaydet
		edge := models.CardDependency{
			CardID:          cardID,
			DependsOnCardID: dependsOnCardID,
		}
		if err := depRepoTx.CreateDependency(txCtx, &edge); err != nil {
			configslog.Log.Error("Bağımlılık oluşturulurken hata",
				zap.Uint("card_id", cardID), zap.Uint("depends_on_card_id", dependsOnCardID), zap.Error(err))
			return ErrDependencyCreationFailed
		}
		created = &edge
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Bağımlılık başarıyla oluşturuldu: %d -> %d (kenar %d)", cardID, dependsOnCardID, created.ID)
	return created, nil
}

// wouldCreateCycle cardID -> dependsOnCardID kenarının döngü oluşturup
// oluşturmayacağını kontrol eder: mevcut grafta dependsOnCardID'den
// cardID'ye yönlü bir yol varsa yeni kenar döngüyü kapatır.
//
// Yürüyüş özyineleme yerine açık bir worklist ile yapılır; visited kümesi
// hem belleği ziyaret edilen düğüm sayısıyla sınırlar hem de veri dışarıdan
// bozulup graf zaten döngülü hale gelmişse sonsuz dönmeyi engeller
// (invariant'ın geçerli olduğu varsayılmaz).
func (s *DependencyService) wouldCreateCycle(repo repositories.IDependencyRepository, cardID, dependsOnCardID uint) (bool, error) {
	visited := map[uint]bool{}
	worklist := []uint{dependsOnCardID}

	for len(worklist) > 0 {
		node := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if node == cardID {
			return true, nil
		}
		if visited[node] {
			continue
		}
		visited[node] = true

		next, err := repo.FindDependsOnCardIDs(node)
		if err != nil {
			return false, err
		}
		worklist = append(worklist, next...)
	}
	return false, nil
}

// RemoveDependency kenarı siler.
func (s *DependencyService) RemoveDependency(ctx context.Context, userID uint, edgeID uint) error {
	if edgeID == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz kenar veya kullanıcı ID", ErrDepInvalidInput)
	}

	txCtx := contextWithUserID(ctx, userID)
	if err := s.repo.DeleteDependency(txCtx, edgeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDependencyNotFound
		}
		configslog.Log.Error("Bağımlılık silinirken hata", zap.Uint("edge_id", edgeID), zap.Error(err))
		return ErrDependencyDeletionFailed
	}

	configslog.SLog.Infof("Bağımlılık başarıyla silindi: kenar %d", edgeID)
	return nil
}

// ListDependencies kartın bağımlılıklarını, görüntüleme için her iki kartın
// başlıklarıyla birlikte döndürür. Kart yoksa ErrCardNotFound döner.
func (s *DependencyService) ListDependencies(ctx context.Context, cardID uint) ([]models.CardDependency, error) {
	if cardID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kart ID", ErrDepInvalidInput)
	}
	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	edges, err := s.repo.ListDependenciesByCardID(cardID)
	if err != nil {
		configslog.Log.Error("Bağımlılıklar listelenirken hata", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return edges, nil
}

var _ IDependencyService = (*DependencyService)(nil)
