package seeders

import (
	"errors"
	"os"

	"pano.link/configs/configslog"
	"pano.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser sistem kullanıcısını oluşturur veya günceller.
// Sistem kullanıcısı tüm panoları görebilir ve yönetebilir.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	if email == "" {
		email = "system@pano.link"
	}
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if password == "" {
		configslog.SLog.Warn("SYSTEM_USER_PASSWORD tanımlı değil, varsayılan şifre kullanılıyor.")
		password = "ChangeMe123!"
	}

	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' oluşturuluyor...", email)
		user = models.User{
			Name:     "Sistem",
			Email:    email,
			IsSystem: true,
			IsActive: true,
		}
		if err := user.SetPassword(password); err != nil {
			configslog.Log.Error("Sistem kullanıcısı şifresi oluşturulamadı", zap.Error(err))
			return err
		}
		if err := db.Create(&user).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem kullanıcısı başarıyla oluşturuldu (ID: %d).", user.ID)
		return nil
	}
	if result.Error != nil {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	updates := map[string]interface{}{}
	if !user.IsSystem {
		updates["is_system"] = true
	}
	if !user.IsActive {
		updates["is_active"] = true
	}
	if len(updates) > 0 {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' güncelleniyor...", email)
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
			return err
		}
	} else {
		configslog.SLog.Debugf("Sistem kullanıcısı '%s' zaten mevcut ve güncel.", email)
	}
	return nil
}
