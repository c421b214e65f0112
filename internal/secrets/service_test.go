package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yotam1312/EasyPass/internal/cryptox"
	"github.com/Yotam1312/EasyPass/internal/logging"
)

func newTestService() (*Service, Repository) {
	repo := NewMemoryRepository()
	return NewService(repo, cryptox.NewCipher("test-passphrase"), logging.Discard()), repo
}

func TestCreateEncryptsAtRest(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, 1, "Mail", "a@x.com", "p@ss")
	require.NoError(t, err)
	assert.Positive(t, entry.ID)
	assert.Equal(t, "p@ss", entry.Password, "caller sees plaintext")

	stored, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEqual(t, "p@ss", stored[0].Password, "repository sees ciphertext")
	assert.NotEmpty(t, stored[0].Password)
}

func TestListDecrypts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Mail", "a@x.com", "p@ss")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "Bank", "a@x.com", "hunter2")
	require.NoError(t, err)

	entries, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p@ss", entries[0].Password)
	assert.Equal(t, "hunter2", entries[1].Password)
}

func TestOwnershipScoping(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Mail", "a@x.com", "p@ss")
	require.NoError(t, err)

	// Another user sees nothing.
	entries, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Foreign update and delete are indistinguishable from absence.
	_, err = svc.Update(ctx, 2, created.ID, "Mail", "b@x.com", "stolen")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2, created.ID), ErrNotFound)

	// The owner's view is untouched.
	entries, err = svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p@ss", entries[0].Password)
}

func TestUpdateReencrypts(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Mail", "a@x.com", "p@ss")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, created.ID, "Mail2", "b@x.com", "n3w")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Mail2", updated.Service)
	assert.Equal(t, "n3w", updated.Password)

	stored, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEqual(t, "n3w", stored[0].Password)
}

func TestDeleteIsNotRepeatable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Mail", "a@x.com", "p@ss")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, 1, created.ID), ErrNotFound)
}

func TestSearchByServiceCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "Gmail", "a@x.com", "p@ss")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "Bank", "a@x.com", "hunter2")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "Gmail", "b@x.com", "other")
	require.NoError(t, err)

	matches, err := svc.SearchByService(ctx, 1, "gma")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Gmail", matches[0].Service)
	assert.Equal(t, "p@ss", matches[0].Password)

	none, err := svc.SearchByService(ctx, 1, "netflix")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListSurfacesCorruptCiphertext(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, cryptox.NewCipher("test-passphrase"), logging.Discard())
	ctx := context.Background()

	_, err := repo.Create(ctx, Entry{OwnerID: 1, Service: "Mail", Username: "a@x.com", Password: "not-a-ciphertext"})
	require.NoError(t, err)

	_, err = svc.List(ctx, 1)
	assert.ErrorIs(t, err, cryptox.ErrDecryption)
}

func TestEmptyPasswordRoundTrip(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Mail", "a@x.com", "")
	require.NoError(t, err)
	assert.Empty(t, created.Password)

	stored, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].Password, "empty password is stored as the empty string, not encrypted")

	entries, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries[0].Password)
}
