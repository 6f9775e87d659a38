// services/card_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"pano.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// cardTestFixture kart testleri için iki sütunlu bir pano hazırlar.
type cardTestFixture struct {
	db     *gorm.DB
	userID uint
	colA   *models.BoardColumn
	colB   *models.BoardColumn
	svc    ICardService
}

func newCardTestFixture(t *testing.T) *cardTestFixture {
	t.Helper()
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)

	boardSvc := NewBoardService()
	columnSvc := NewColumnService()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint")
	return &cardTestFixture{
		db:     db,
		userID: user.ID,
		colA:   createTestColumn(t, columnSvc, user.ID, board.ID, "Yapılacak"),
		colB:   createTestColumn(t, columnSvc, user.ID, board.ID, "Tamamlandı"),
		svc:    NewCardService(),
	}
}

func TestCreateCard_DefaultsPriorityToMedium(t *testing.T) {
	f := newCardTestFixture(t)

	card, err := f.svc.CreateCard(context.Background(), f.userID, f.colA.ID, CardCreateInput{Title: "Görev"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, card.Priority)
}

func TestCreateCard_InvalidPriority(t *testing.T) {
	f := newCardTestFixture(t)

	_, err := f.svc.CreateCard(context.Background(), f.userID, f.colA.ID, CardCreateInput{
		Title:    "Görev",
		Priority: "urgent",
	})
	assert.ErrorIs(t, err, ErrCardInvalidPriority)
}

func TestCreateCard_TitleRequired(t *testing.T) {
	f := newCardTestFixture(t)

	_, err := f.svc.CreateCard(context.Background(), f.userID, f.colA.ID, CardCreateInput{})
	assert.ErrorIs(t, err, ErrCrdInvalidInput)
}

func TestCreateCard_ColumnNotFound(t *testing.T) {
	f := newCardTestFixture(t)

	_, err := f.svc.CreateCard(context.Background(), f.userID, 9999, CardCreateInput{Title: "Görev"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestCreateCard_SequentialOrderPerColumn(t *testing.T) {
	f := newCardTestFixture(t)

	// Sayaç sütun başınadır; B'deki kartlar A'yı etkilemez.
	for i := 0; i < 3; i++ {
		card := createTestCard(t, f.svc, f.userID, f.colA.ID, "A Kartı")
		assert.Equal(t, i, card.OrderIndex)
	}
	cardB := createTestCard(t, f.svc, f.userID, f.colB.ID, "B Kartı")
	assert.Equal(t, 0, cardB.OrderIndex)
}

func TestUpdateCard_PartialKeepsFields(t *testing.T) {
	f := newCardTestFixture(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	card, err := f.svc.CreateCard(ctx, f.userID, f.colA.ID, CardCreateInput{
		Title:       "Görev",
		Description: "Açıklama",
		DueDate:     &due,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)

	newTitle := "Güncel Görev"
	updated, err := f.svc.UpdateCard(ctx, card.ID, f.userID, CardUpdateInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Güncel Görev", updated.Title)
	assert.Equal(t, "Açıklama", updated.Description)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
}

func TestUpdateCard_MoveToOtherColumn(t *testing.T) {
	f := newCardTestFixture(t)
	ctx := context.Background()

	card := createTestCard(t, f.svc, f.userID, f.colA.ID, "Taşınacak")

	updated, err := f.svc.UpdateCard(ctx, card.ID, f.userID, CardUpdateInput{ColumnID: &f.colB.ID})
	require.NoError(t, err)
	assert.Equal(t, f.colB.ID, updated.ColumnID)

	cardsA, err := f.svc.ListCards(ctx, f.colA.ID)
	require.NoError(t, err)
	assert.Empty(t, cardsA)

	cardsB, err := f.svc.ListCards(ctx, f.colB.ID)
	require.NoError(t, err)
	require.Len(t, cardsB, 1)
	assert.Equal(t, card.ID, cardsB[0].ID)
}

func TestUpdateCard_MoveToMissingColumn(t *testing.T) {
	f := newCardTestFixture(t)

	missing := uint(9999)
	_, err := f.svc.UpdateCard(context.Background(), 0, f.userID, CardUpdateInput{ColumnID: &missing})
	assert.ErrorIs(t, err, ErrCrdInvalidInput)

	card := createTestCard(t, f.svc, f.userID, f.colA.ID, "Taşınacak")
	_, err = f.svc.UpdateCard(context.Background(), card.ID, f.userID, CardUpdateInput{ColumnID: &missing})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestUpdateCard_DuplicateOrderTolerated(t *testing.T) {
	f := newCardTestFixture(t)
	ctx := context.Background()

	first := createTestCard(t, f.svc, f.userID, f.colA.ID, "Birinci")
	second := createTestCard(t, f.svc, f.userID, f.colA.ID, "İkinci")

	// İkinciye birinciyle aynı sıra atanır; hata beklenmez,
	// eşitlik id ile deterministik çözülür.
	zero := 0
	_, err := f.svc.UpdateCard(ctx, second.ID, f.userID, CardUpdateInput{OrderIndex: &zero})
	require.NoError(t, err)

	cards, err := f.svc.ListCards(ctx, f.colA.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)
}

func TestUpdateCard_NegativeOrderRejected(t *testing.T) {
	f := newCardTestFixture(t)

	card := createTestCard(t, f.svc, f.userID, f.colA.ID, "Görev")

	negative := -1
	_, err := f.svc.UpdateCard(context.Background(), card.ID, f.userID, CardUpdateInput{OrderIndex: &negative})
	assert.ErrorIs(t, err, ErrCrdInvalidInput)
}

func TestDeleteCard_RemovesEdgesInBothDirections(t *testing.T) {
	f := newCardTestFixture(t)
	depSvc := NewDependencyService()
	ctx := context.Background()

	center := createTestCard(t, f.svc, f.userID, f.colA.ID, "Merkez")
	upstream := createTestCard(t, f.svc, f.userID, f.colA.ID, "Önce")
	downstream := createTestCard(t, f.svc, f.userID, f.colB.ID, "Sonra")

	// Gelen ve giden birer kenar: merkez silinince ikisi de gitmeli.
	_, err := depSvc.AddDependency(ctx, f.userID, center.ID, upstream.ID)
	require.NoError(t, err)
	_, err = depSvc.AddDependency(ctx, f.userID, downstream.ID, center.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCard(ctx, center.ID, f.userID))
	assert.Zero(t, countEdges(t, f.db))

	// Uçlardaki kartlar yerinde kalır.
	_, err = f.svc.ListCards(ctx, f.colA.ID)
	require.NoError(t, err)
	edges, err := depSvc.ListDependencies(ctx, downstream.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDeleteCard_NotFound(t *testing.T) {
	f := newCardTestFixture(t)

	err := f.svc.DeleteCard(context.Background(), 9999, f.userID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestListCards_ColumnNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewCardService()

	_, err := svc.ListCards(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}
