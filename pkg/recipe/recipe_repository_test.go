package recipe

import (
	"TasteBite-Backend/entities"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestUpdateRecipeScopesByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	recipeID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectExec(`UPDATE "recipes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateRecipe(context.Background(), recipeID.String(), ownerID, map[string]interface{}{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecipeZeroRowsForForeignOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectExec(`UPDATE "recipes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateRecipe(context.Background(), uuid.New().String(), uuid.New(), map[string]interface{}{"title": "renamed"})
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecipeSkipsCascadeWhenNothingDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	// The owner-scoped delete removes nothing, so no dependent tables are
	// touched.
	mock.ExpectExec(`DELETE FROM "recipes" WHERE id = .+ AND user_id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.DeleteRecipe(context.Background(), uuid.New().String(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecipeCascadesDependents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectExec(`DELETE FROM "recipes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "recipe_photos"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM recipe_tags`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "collection_items"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "favorites"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM comment_reactions`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "comments"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "notifications"`).WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteRecipe(context.Background(), uuid.New().String(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceTagsReplacesNotUnions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	recipe := &entities.Recipe{ID: uuid.New()}
	tagRows := func(name string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.New().String(), name)
	}

	// First set: both tags resolved by name, join rows rewritten.
	mock.ExpectQuery(`SELECT \* FROM "tags"`).WillReturnRows(tagRows("breakfast"))
	mock.ExpectQuery(`SELECT \* FROM "tags"`).WillReturnRows(tagRows("vegan"))
	mock.ExpectExec(`DELETE FROM recipe_tags WHERE recipe_id =`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO recipe_tags`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO recipe_tags`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceTags(context.Background(), recipe, []string{"breakfast", "vegan"}))
	require.Len(t, recipe.Tags, 2)

	// Second set: the previous join rows are deleted, only the new tag is
	// inserted.
	mock.ExpectQuery(`SELECT \* FROM "tags"`).WillReturnRows(tagRows("dinner"))
	mock.ExpectExec(`DELETE FROM recipe_tags WHERE recipe_id =`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO recipe_tags`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceTags(context.Background(), recipe, []string{"dinner"}))
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "dinner", recipe.Tags[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceTagsEmptySetClearsJoinRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	recipe := &entities.Recipe{
		ID:   uuid.New(),
		Tags: []entities.Tag{{ID: uuid.New(), Name: "vegan"}},
	}

	// No tag lookups and no inserts, just the join table wipe.
	mock.ExpectExec(`DELETE FROM recipe_tags WHERE recipe_id =`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceTags(context.Background(), recipe, nil))
	assert.Empty(t, recipe.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsFavorited(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	favorited, err := repo.IsFavorited(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.NoError(t, mock.ExpectationsWereMet())
}
