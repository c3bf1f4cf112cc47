package repository

import (
	"context"
	"testing"

	"scorekeeper/models"
	"scorekeeper/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, repo *UserRepository, username string) *models.User {
	t.Helper()
	user, err := repo.Create(context.Background(), username, "$2a$10$fakehash")
	require.NoError(t, err)
	return user
}

func TestScoreRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	scores := NewScoreRepository(testDB.DB)
	ctx := context.Background()

	alice := createUser(t, users, "alice")

	score := testutil.CreateTestScoreWithLabels(alice.ID, 250, "two-player", "ZAP")
	err := scores.Create(ctx, score)
	require.NoError(t, err)
	assert.NotZero(t, score.ID)
	assert.False(t, score.CreatedAt.IsZero())

	t.Run("identical submissions create distinct records", func(t *testing.T) {
		again := testutil.CreateTestScoreWithLabels(alice.ID, 250, "two-player", "ZAP")
		err := scores.Create(ctx, again)
		require.NoError(t, err)
		assert.NotEqual(t, score.ID, again.ID)
	})

	t.Run("negative values are stored as submitted", func(t *testing.T) {
		negative := testutil.CreateTestScore(alice.ID, -500)
		err := scores.Create(ctx, negative)
		require.NoError(t, err)
	})
}

func TestScoreRepository_ListOrdering(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	scores := NewScoreRepository(testDB.DB)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	// Insert in known order; created_at is assigned monotonically at insert
	first := testutil.CreateTestScore(alice.ID, 5)
	require.NoError(t, scores.Create(ctx, first))
	second := testutil.CreateTestScore(alice.ID, 15)
	require.NoError(t, scores.Create(ctx, second))
	other := testutil.CreateTestScore(bob.ID, 10)
	require.NoError(t, scores.Create(ctx, other))

	t.Run("list all is most recent first", func(t *testing.T) {
		all, err := scores.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, other.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
		assert.Equal(t, first.ID, all[2].ID)
		// Username is joined onto every row
		assert.Equal(t, "bob", all[0].Username)
		assert.Equal(t, "alice", all[1].Username)
	})

	t.Run("list by user filters and keeps ordering", func(t *testing.T) {
		mine, err := scores.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		// Both submissions appear, the later one first
		assert.Equal(t, int64(15), mine[0].Value)
		assert.Equal(t, int64(5), mine[1].Value)
	})

	t.Run("no scores is an empty list", func(t *testing.T) {
		carol := createUser(t, users, "carol")
		none, err := scores.ListByUser(ctx, carol.ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestScoreRepository_TopN(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	scores := NewScoreRepository(testDB.DB)
	ctx := context.Background()

	alice := createUser(t, users, "alice")

	t.Run("value descending with ties ranked earlier-first", func(t *testing.T) {
		older := testutil.CreateTestScoreWithLabels(alice.ID, 100, "standard", "OLD")
		require.NoError(t, scores.Create(ctx, older))
		newer := testutil.CreateTestScoreWithLabels(alice.ID, 100, "standard", "NEW")
		require.NoError(t, scores.Create(ctx, newer))
		lower := testutil.CreateTestScore(alice.ID, 50)
		require.NoError(t, scores.Create(ctx, lower))

		top, err := scores.TopN(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, "OLD", top[0].PlayerName)
		assert.Equal(t, "NEW", top[1].PlayerName)
		assert.Equal(t, int64(50), top[2].Value)

		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].Value, top[i].Value)
		}
	})

	t.Run("never more than the limit", func(t *testing.T) {
		for i := int64(0); i < 12; i++ {
			require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(alice.ID, 200+i)))
		}

		top, err := scores.TopN(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, top, 10)
		assert.Equal(t, int64(211), top[0].Value)
	})
}

func TestScoreRepository_StatsByPlayer(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	scores := NewScoreRepository(testDB.DB)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	for _, v := range []int64{10, 20, 30} {
		require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(alice.ID, v)))
	}
	require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(bob.ID, 100)))

	stats, err := scores.StatsByPlayer(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by best score descending
	assert.Equal(t, "bob", stats[0].Username)
	assert.Equal(t, int64(100), stats[0].BestScore)

	assert.Equal(t, "alice", stats[1].Username)
	assert.Equal(t, 3, stats[1].GamesPlayed)
	assert.InDelta(t, 20.0, stats[1].AverageScore, 0.0001)
	assert.Equal(t, int64(30), stats[1].BestScore)
}

func TestScoreRepository_OwnerDeletionCascades(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	scores := NewScoreRepository(testDB.DB)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(alice.ID, 10)))
	require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(alice.ID, 20)))
	require.NoError(t, scores.Create(ctx, testutil.CreateTestScore(bob.ID, 30)))

	require.NoError(t, users.Delete(ctx, alice.ID))

	// No orphaned records: only bob's score survives
	all, err := scores.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, bob.ID, all[0].UserID)
}
