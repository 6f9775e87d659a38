// models/user.go
package models

import "golang.org/x/crypto/bcrypt"

// User pano sahipliği ve atamalar için asgari kullanıcı kaydı.
// Kullanıcı yönetimi (rol/izin CRUD'u) bu çekirdeğin kapsamı dışındadır.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	IsSystem     bool   `gorm:"default:false"` // Sistem (admin) kullanıcısı mı?
	IsActive     bool   `gorm:"default:true;index"`
}

// SetPassword şifreyi bcrypt ile hash'leyip kaydeder.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verilen şifreyi hash ile karşılaştırır.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
