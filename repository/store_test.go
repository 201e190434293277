package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-management-backend/models"
)

func openUserCollection(t *testing.T) (*Collection[models.User], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return OpenCollection[models.User](path), path
}

func TestCollectionInsertAssignsSequentialIDs(t *testing.T) {
	c, _ := openUserCollection(t)

	first := c.Insert(func(id int) models.User { return models.User{ID: id, Email: "a@x.com"} })
	second := c.Insert(func(id int) models.User { return models.User{ID: id, Email: "b@x.com"} })

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, c.Count())
}

func TestCollectionIDsNotReusedAfterDelete(t *testing.T) {
	c, _ := openUserCollection(t)

	c.Insert(func(id int) models.User { return models.User{ID: id} })
	second := c.Insert(func(id int) models.User { return models.User{ID: id} })
	require.True(t, c.Delete(second.ID))

	third := c.Insert(func(id int) models.User { return models.User{ID: id} })
	assert.Equal(t, 3, third.ID, "deleted ids must never be reassigned")
}

func TestCollectionPersistsAcrossReopen(t *testing.T) {
	c, path := openUserCollection(t)

	c.Insert(func(id int) models.User { return models.User{ID: id, Email: "a@x.com", Name: "A"} })
	c.Insert(func(id int) models.User { return models.User{ID: id, Email: "b@x.com", Name: "B"} })

	reopened := OpenCollection[models.User](path)
	assert.Equal(t, 2, reopened.Count())

	user, ok := reopened.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b@x.com", user.Email)

	// The id counter must resume from the persisted maximum.
	next := reopened.Insert(func(id int) models.User { return models.User{ID: id} })
	assert.Equal(t, 3, next.ID)
}

func TestCollectionCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := OpenCollection[models.User](path)
	assert.Equal(t, 0, c.Count())

	user := c.Insert(func(id int) models.User { return models.User{ID: id} })
	assert.Equal(t, 1, user.ID)
}

func TestCollectionFilterReturnsEmptySliceNotNil(t *testing.T) {
	c, _ := openUserCollection(t)

	got := c.Filter(func(u models.User) bool { return u.Role == "hr" })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionUpdateMutatesAndPersists(t *testing.T) {
	c, path := openUserCollection(t)

	user := c.Insert(func(id int) models.User { return models.User{ID: id, Name: "Old"} })
	updated, ok := c.Update(user.ID, func(u *models.User) { u.Name = "New" })
	require.True(t, ok)
	assert.Equal(t, "New", updated.Name)

	reopened := OpenCollection[models.User](path)
	got, ok := reopened.Get(user.ID)
	require.True(t, ok)
	assert.Equal(t, "New", got.Name)
}

func TestCollectionUpdateMissingID(t *testing.T) {
	c, _ := openUserCollection(t)

	_, ok := c.Update(42, func(u *models.User) { u.Name = "X" })
	assert.False(t, ok)
}

func TestOpenStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := OpenStore(dir)
	require.NoError(t, err)
	require.NotNil(t, store)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUserRepositoryEmailLookupIsCaseInsensitive(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)

	repo := NewUserRepository(store)
	repo.Create("HR@Company.com", "hash", "hr", "Admin", "", "")

	_, ok := repo.FindByEmail("hr@company.com")
	assert.True(t, ok)
	assert.True(t, repo.EmailExists("hr@COMPANY.com"))

	_, ok = repo.FindByEmailAndRole("hr@company.com", "employee")
	assert.False(t, ok, "role must match exactly")
}

func TestUserRepositoryNameOfFallsBackToUnknown(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)

	repo := NewUserRepository(store)
	assert.Equal(t, "Unknown", repo.NameOf(999))
}
