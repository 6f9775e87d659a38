// services/dependency_service_test.go
package services

import (
	"context"
	"testing"

	"pano.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depTestFixture bağımlılık testleri için tek sütunlu bir pano ve
// üzerinde üç kart hazırlar.
type depTestFixture struct {
	userID uint
	cards  [3]*models.Card
	svc    IDependencyService
}

func newDepTestFixture(t *testing.T) *depTestFixture {
	t.Helper()
	db := newTestDB(t)
	user := createTestUser(t, db, "ali", false)

	boardSvc := NewBoardService()
	columnSvc := NewColumnService()
	cardSvc := NewCardService()

	board := createTestBoard(t, boardSvc, user.ID, "Sprint Panosu")
	column := createTestColumn(t, columnSvc, user.ID, board.ID, "Yapılacak")

	f := &depTestFixture{userID: user.ID, svc: NewDependencyService()}
	f.cards[0] = createTestCard(t, cardSvc, user.ID, column.ID, "Tasarım")
	f.cards[1] = createTestCard(t, cardSvc, user.ID, column.ID, "Geliştirme")
	f.cards[2] = createTestCard(t, cardSvc, user.ID, column.ID, "Test")
	return f
}

func TestAddDependency_CreatesEdge(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	edge, err := f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, f.cards[1].ID, edge.CardID)
	assert.Equal(t, f.cards[0].ID, edge.DependsOnCardID)
	assert.NotZero(t, edge.ID)

	edges, err := f.svc.ListDependencies(ctx, f.cards[1].ID)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.NotNil(t, edges[0].Card)
	require.NotNil(t, edges[0].DependsOnCard)
	assert.Equal(t, "Geliştirme", edges[0].Card.Title)
	assert.Equal(t, "Tasarım", edges[0].DependsOnCard.Title)
}

func TestAddDependency_SelfLoopRejected(t *testing.T) {
	f := newDepTestFixture(t)

	_, err := f.svc.AddDependency(context.Background(), f.userID, f.cards[0].ID, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrSelfDependency)
}

func TestAddDependency_SelfLoopOnMissingCard(t *testing.T) {
	f := newDepTestFixture(t)

	// Kart yokken self-loop denemesi önce varlık hatası vermeli.
	_, err := f.svc.AddDependency(context.Background(), f.userID, 9999, 9999)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestAddDependency_MissingCardRejected(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddDependency(ctx, f.userID, f.cards[0].ID, 9999)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = f.svc.AddDependency(ctx, f.userID, 9999, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestAddDependency_DuplicateRejected(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.NoError(t, err)

	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrDuplicateDependency)
}

func TestAddDependency_ReverseEdgeIsCycle(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddDependency(ctx, f.userID, f.cards[0].ID, f.cards[1].ID)
	require.NoError(t, err)

	// 1 -> 0 kenarı, mevcut 0 -> 1 ile iki düğümlük döngü kapatır.
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrDependencyCycle)
}

func TestAddDependency_TransitiveCycleRejected(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	// Zincir: 0 -> 1 -> 2
	_, err := f.svc.AddDependency(ctx, f.userID, f.cards[0].ID, f.cards[1].ID)
	require.NoError(t, err)
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[2].ID)
	require.NoError(t, err)

	// 2 -> 0 üç kenarlık döngü kapatır, reddedilmeli.
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[2].ID, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrDependencyCycle)

	// Aynı yönde kestirme (0 -> 2) döngü oluşturmaz, kabul edilmeli.
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[0].ID, f.cards[2].ID)
	assert.NoError(t, err)
}

func TestRemoveDependency(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	edge, err := f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveDependency(ctx, f.userID, edge.ID))

	edges, err := f.svc.ListDependencies(ctx, f.cards[1].ID)
	require.NoError(t, err)
	assert.Empty(t, edges)

	// Aynı kenarı ikinci kez silmek NotFound döner.
	err = f.svc.RemoveDependency(ctx, f.userID, edge.ID)
	assert.ErrorIs(t, err, ErrDependencyNotFound)
}

func TestRemoveDependency_AllowsReAdd(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	edge, err := f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.RemoveDependency(ctx, f.userID, edge.ID))

	// Kenar kalıcı silindiği için aynı ikili yeniden eklenebilir.
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	assert.NoError(t, err)
}

func TestRemoveDependency_UnblocksCycle(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	edge, err := f.svc.AddDependency(ctx, f.userID, f.cards[0].ID, f.cards[1].ID)
	require.NoError(t, err)

	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.ErrorIs(t, err, ErrDependencyCycle)

	// Engelleyen kenar silinince ters yön serbest kalır.
	require.NoError(t, f.svc.RemoveDependency(ctx, f.userID, edge.ID))
	_, err = f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	assert.NoError(t, err)
}

func TestListDependencies_CardNotFound(t *testing.T) {
	f := newDepTestFixture(t)

	_, err := f.svc.ListDependencies(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestListDependencies_EmptyForLeafCard(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	// 1 -> 0 kenarı 0'ın listesinde görünmez (liste çıkış kenarlarıdır).
	_, err := f.svc.AddDependency(ctx, f.userID, f.cards[1].ID, f.cards[0].ID)
	require.NoError(t, err)

	edges, err := f.svc.ListDependencies(ctx, f.cards[0].ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestAddDependency_InvalidInput(t *testing.T) {
	f := newDepTestFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddDependency(ctx, f.userID, 0, f.cards[0].ID)
	assert.ErrorIs(t, err, ErrDepInvalidInput)

	_, err = f.svc.AddDependency(ctx, 0, f.cards[0].ID, f.cards[1].ID)
	assert.ErrorIs(t, err, ErrDepInvalidInput)
}
