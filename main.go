package main

import (
	"os"
	"os/signal"
	"syscall"

	"pano.link/configs/configsdatabase"
	"pano.link/configs/configslog"
	"pano.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "pano.link",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			configslog.Log.Error("İşlenmemiş handler hatası",
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{"error": "beklenmeyen bir hata oluştu"})
		},
	})

	app.Static("/assets", "./assets")
	routes.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}
