// services/testutil_test.go
package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"pano.link/configs/configsdatabase"
	"pano.link/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB her test için izole bir in-memory sqlite veritabanı açar,
// şemayı kurar ve paylaşılan bağlantıyı bu veritabanına yönlendirir.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// cache=shared: gorm connection pool'undaki her bağlantı aynı
	// in-memory veritabanını görsün.
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Board{},
		&models.BoardColumn{},
		&models.Card{},
		&models.CardDependency{},
	))

	configsdatabase.SetDB(db)
	return db
}

// createTestUser aktif bir kullanıcı kaydı oluşturur.
func createTestUser(t *testing.T, db *gorm.DB, name string, isSystem bool) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@test.local", name, atomic.AddInt64(&testDBSeq, 1)),
		IsSystem: isSystem,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("Sifre123!"))
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createTestBoard servis üzerinden pano oluşturur.
func createTestBoard(t *testing.T, svc IBoardService, userID uint, name string) *models.Board {
	t.Helper()
	board, err := svc.CreateBoard(context.Background(), userID, name, "", nil)
	require.NoError(t, err)
	return board
}

// createTestColumn servis üzerinden sütun oluşturur.
func createTestColumn(t *testing.T, svc IColumnService, userID, boardID uint, name string) *models.BoardColumn {
	t.Helper()
	column, err := svc.CreateColumn(context.Background(), userID, boardID, name)
	require.NoError(t, err)
	return column
}

// createTestCard servis üzerinden kart oluşturur.
func createTestCard(t *testing.T, svc ICardService, userID, columnID uint, title string) *models.Card {
	t.Helper()
	card, err := svc.CreateCard(context.Background(), userID, columnID, CardCreateInput{Title: title})
	require.NoError(t, err)
	return card
}

// countEdges card_dependencies tablosundaki toplam kenar sayısını döndürür.
func countEdges(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.CardDependency{}).Count(&count).Error)
	return count
}
