// services/column_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateColumn_AssignsSequentialOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")

	names := []string{"Yapılacak", "Devam Ediyor", "Tamamlandı"}
	for i, name := range names {
		column := createTestColumn(t, svc, user.ID, board.ID, name)
		assert.Equal(t, i, column.OrderIndex)
	}
}

func TestCreateColumn_BoardNotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	svc := NewColumnService()

	_, err := svc.CreateColumn(context.Background(), user.ID, 9999, "Yapılacak")
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestCreateColumn_NameRequired(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")

	_, err := svc.CreateColumn(context.Background(), user.ID, board.ID, "")
	assert.ErrorIs(t, err, ErrColInvalidInput)
}

func TestUpdateColumn_Rename(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	column := createTestColumn(t, svc, user.ID, board.ID, "Eski Ad")

	newName := "Yeni Ad"
	updated, err := svc.UpdateColumn(ctx, column.ID, user.ID, ColumnUpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Yeni Ad", updated.Name)
	assert.Equal(t, column.OrderIndex, updated.OrderIndex) // Sıra korunur
}

func TestUpdateColumn_NotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	svc := NewColumnService()

	newName := "Yeni Ad"
	_, err := svc.UpdateColumn(context.Background(), 9999, user.ID, ColumnUpdateInput{Name: &newName})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestUpdateColumn_DuplicateOrderTolerated(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	colA := createTestColumn(t, svc, user.ID, board.ID, "A")
	colB := createTestColumn(t, svc, user.ID, board.ID, "B")

	// B'ye A ile aynı sıra atanır; hata beklenmez.
	zero := 0
	_, err := svc.UpdateColumn(ctx, colB.ID, user.ID, ColumnUpdateInput{OrderIndex: &zero})
	require.NoError(t, err)

	// Eşit sıra, id ile deterministik çözülür.
	columns, err := svc.ListColumns(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, colA.ID, columns[0].ID)
	assert.Equal(t, colB.ID, columns[1].ID)
}

func TestDeleteColumn_CascadesCardsAndEdges(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()
	cardSvc := NewCardService()
	depSvc := NewDependencyService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	colA := createTestColumn(t, svc, user.ID, board.ID, "A")
	colB := createTestColumn(t, svc, user.ID, board.ID, "B")
	cardA := createTestCard(t, cardSvc, user.ID, colA.ID, "Kart A")
	cardB := createTestCard(t, cardSvc, user.ID, colB.ID, "Kart B")

	// Kenarın öteki ucu silinen sütunun dışında: yine de temizlenmeli.
	_, err := depSvc.AddDependency(ctx, user.ID, cardB.ID, cardA.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteColumn(ctx, colA.ID, user.ID))

	_, err = cardSvc.ListCards(ctx, colA.ID)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Zero(t, countEdges(t, db))

	// Diğer sütun ve kartı etkilenmez.
	cards, err := cardSvc.ListCards(ctx, colB.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestDeleteColumn_EmptyColumn(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()
	ctx := context.Background()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	column := createTestColumn(t, svc, user.ID, board.ID, "Boş")

	require.NoError(t, svc.DeleteColumn(ctx, column.ID, user.ID))

	err := svc.DeleteColumn(ctx, column.ID, user.ID)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestListColumns_BoardNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewColumnService()

	_, err := svc.ListColumns(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestListColumns_EmptyBoard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)
	boardSvc := NewBoardService()
	svc := NewColumnService()

	board := createTestBoard(t, boardSvc, user.ID, "Boş Pano")

	columns, err := svc.ListColumns(context.Background(), board.ID)
	require.NoError(t, err)
	assert.Empty(t, columns)
}
