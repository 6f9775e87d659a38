// repositories/user_repository.go
package repositories

import (
	"context"
	"errors"

	"pano.link/configs/configsdatabase"
	"pano.link/models"

	"gorm.io/gorm"
)

// IUserRepository kullanıcı okuma işlemleri için arayüz.
// Kullanıcı CRUD'u kapsam dışıdır; servisler sadece yetki kontrolü ve
// atama doğrulaması için kullanıcı okur.
type IUserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	Base *BaseRepository[models.User]
	Db   *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

// NewUserRepositoryTx verilen transaction üzerinde çalışan repository oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{Base: NewBaseRepository[models.User](tx), Db: tx}
}

// FindByID kullanıcıyı ID ile bulur.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.Base.FindByID(ctx, id)
}

// FindByEmail kullanıcıyı e-posta ile bulur.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Arayüz uyumluluğu kontrolü
var _ IUserRepository = (*UserRepository)(nil)
