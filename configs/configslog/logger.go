// configs/configslog/logger.go
package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog printf tarzı loglama için sugared logger.
// InitLogger çağrılana kadar no-op'turlar; böylece testler sessiz çalışır.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger uygulama logger'ını ortama göre başlatır.
// APP_ENV=production ise JSON, aksi halde renkli konsol çıktısı kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesinin anlamı yok.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'lanmış log kayıtlarını flush eder (defer ile çağrılır).
func SyncLogger() {
	_ = Log.Sync()
}
