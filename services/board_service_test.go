// services/board_service_test.go
package services

import (
	"context"
	"testing"

	"pano.link/models"
	"pano.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBoard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	svc := NewBoardService()

	board, err := svc.CreateBoard(context.Background(), user.ID, "Yol Haritası", "2026 planı", nil)
	require.NoError(t, err)
	assert.NotZero(t, board.ID)
	assert.Equal(t, "Yol Haritası", board.Name)
	assert.Equal(t, user.ID, board.CreatorUserID)
	assert.Equal(t, user.ID, board.CreatedBy)
}

func TestCreateBoard_NameRequired(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	svc := NewBoardService()

	_, err := svc.CreateBoard(context.Background(), user.ID, "", "", nil)
	assert.ErrorIs(t, err, ErrBrdInvalidInput)
}

func TestCreateBoard_DuplicateNameAllowed(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	svc := NewBoardService()
	ctx := context.Background()

	_, err := svc.CreateBoard(ctx, user.ID, "Sprint", "", nil)
	require.NoError(t, err)
	_, err = svc.CreateBoard(ctx, user.ID, "Sprint", "", nil)
	assert.NoError(t, err)
}

func TestGetBoardByID_NotFound(t *testing.T) {
	newTestDB(t)
	svc := NewBoardService()

	_, err := svc.GetBoardByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestGetBoardByID_OrdersColumnsAndCards(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	boardSvc := NewBoardService()
	columnSvc := NewColumnService()
	cardSvc := NewCardService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	colA := createTestColumn(t, columnSvc, user.ID, board.ID, "Yapılacak")
	colB := createTestColumn(t, columnSvc, user.ID, board.ID, "Tamamlandı")

	// Sütunları ters çevir: B öne, A arkaya.
	zero, one := 0, 1
	_, err := columnSvc.UpdateColumn(ctx, colB.ID, user.ID, ColumnUpdateInput{OrderIndex: &zero})
	require.NoError(t, err)
	_, err = columnSvc.UpdateColumn(ctx, colA.ID, user.ID, ColumnUpdateInput{OrderIndex: &one})
	require.NoError(t, err)

	first := createTestCard(t, cardSvc, user.ID, colB.ID, "Birinci")
	second := createTestCard(t, cardSvc, user.ID, colB.ID, "İkinci")

	loaded, err := boardSvc.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Columns, 2)
	assert.Equal(t, colB.ID, loaded.Columns[0].ID)
	assert.Equal(t, colA.ID, loaded.Columns[1].ID)

	require.Len(t, loaded.Columns[0].Cards, 2)
	assert.Equal(t, first.ID, loaded.Columns[0].Cards[0].ID)
	assert.Equal(t, second.ID, loaded.Columns[0].Cards[1].ID)
}

func TestUpdateBoard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	svc := NewBoardService()
	ctx := context.Background()

	board := createTestBoard(t, svc, user.ID, "Eski İsim")

	newName := "Yeni İsim"
	require.NoError(t, svc.UpdateBoard(ctx, board.ID, user.ID, BoardUpdateInput{Name: &newName}))

	loaded, err := svc.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni İsim", loaded.Name)
	assert.Equal(t, board.Description, loaded.Description) // Belirtilmeyen alan korunur
}

func TestUpdateBoard_Forbidden(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip", false)
	other := createTestUser(t, db, "davetsiz", false)
	svc := NewBoardService()
	ctx := context.Background()

	board := createTestBoard(t, svc, owner.ID, "Özel Pano")

	newName := "El Konuldu"
	err := svc.UpdateBoard(ctx, board.ID, other.ID, BoardUpdateInput{Name: &newName})
	assert.ErrorIs(t, err, ErrBoardForbidden)
}

func TestUpdateBoard_SystemUserAllowed(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip", false)
	admin := createTestUser(t, db, "sistem", true)
	svc := NewBoardService()
	ctx := context.Background()

	board := createTestBoard(t, svc, owner.ID, "Özel Pano")

	newName := "Düzenlendi"
	assert.NoError(t, svc.UpdateBoard(ctx, board.ID, admin.ID, BoardUpdateInput{Name: &newName}))
}

func TestDeleteBoard_CascadesEverything(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	boardSvc := NewBoardService()
	columnSvc := NewColumnService()
	cardSvc := NewCardService()
	depSvc := NewDependencyService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Silinecek")
	colA := createTestColumn(t, columnSvc, user.ID, board.ID, "A")
	colB := createTestColumn(t, columnSvc, user.ID, board.ID, "B")
	cardA := createTestCard(t, cardSvc, user.ID, colA.ID, "Kart A")
	cardB := createTestCard(t, cardSvc, user.ID, colB.ID, "Kart B")

	_, err := depSvc.AddDependency(ctx, user.ID, cardB.ID, cardA.ID)
	require.NoError(t, err)

	require.NoError(t, boardSvc.DeleteBoard(ctx, board.ID, user.ID))

	_, err = boardSvc.GetBoardByID(ctx, board.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = columnSvc.ListColumns(ctx, board.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = cardSvc.ListCards(ctx, colA.ID)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Zero(t, countEdges(t, db))
}

func TestDeleteBoard_EmptyBoard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	svc := NewBoardService()
	ctx := context.Background()

	// Çocuğu olmayan pano: cascade adımları no-op kalır, silme başarılıdır.
	board := createTestBoard(t, svc, user.ID, "Boş Pano")
	require.NoError(t, svc.DeleteBoard(ctx, board.ID, user.ID))

	err := svc.DeleteBoard(ctx, board.ID, user.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestDeleteBoard_Forbidden(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip", false)
	other := createTestUser(t, db, "davetsiz", false)
	svc := NewBoardService()
	ctx := context.Background()

	board := createTestBoard(t, svc, owner.ID, "Özel Pano")

	err := svc.DeleteBoard(ctx, board.ID, other.ID)
	assert.ErrorIs(t, err, ErrBoardForbidden)

	_, err = svc.GetBoardByID(ctx, board.ID)
	assert.NoError(t, err)
}

func TestGetBoardsForUserPaginated(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ayse", false)
	stranger := createTestUser(t, db, "baskasi", false)
	svc := NewBoardService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestBoard(t, svc, user.ID, "Pano")
	}
	createTestBoard(t, svc, stranger.ID, "Başkasının Panosu")

	params := queryparams.DefaultListParams("created_at")
	params.PerPage = 2

	result, err := svc.GetBoardsForUserPaginated(ctx, user.ID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Meta.TotalItems)
	assert.Equal(t, 2, result.Meta.TotalPages)

	boards, ok := result.Data.([]models.Board)
	require.True(t, ok)
	assert.Len(t, boards, 2)
	for _, b := range boards {
		assert.Equal(t, user.ID, b.CreatorUserID)
	}
}
