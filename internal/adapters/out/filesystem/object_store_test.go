package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dbs3/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewObjectStore(root, testLogger())
	require.NoError(t, err)
	return store, root
}

func writeLocal(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dump.sql")
	require.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

func TestObjectStore_UploadListDownload(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, writeLocal(t, "one"), "bucket", "nightly/db-backup-app.2024-01-01.sql"))
	require.NoError(t, store.Upload(ctx, writeLocal(t, "two!"), "bucket", "nightly/db-backup-app.2024-01-02.sql"))
	require.NoError(t, store.Upload(ctx, writeLocal(t, "other"), "bucket", "nightly/db-backup-other.2024-01-02.sql"))

	assert.FileExists(t, filepath.Join(root, "bucket", "nightly", "db-backup-app.2024-01-01.sql"))

	objects, err := store.List(ctx, "bucket", "nightly/db-backup-app.")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	keys := []string{objects[0].Key, objects[1].Key}
	assert.ElementsMatch(t, []string{"nightly/db-backup-app.2024-01-01.sql", "nightly/db-backup-app.2024-01-02.sql"}, keys)
	for _, obj := range objects {
		assert.False(t, obj.LastModified.IsZero())
	}

	dst := filepath.Join(t.TempDir(), "restored.sql")
	require.NoError(t, store.Download(ctx, "bucket", "nightly/db-backup-app.2024-01-02.sql", dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "two!", string(data))

	meta, err := store.HeadMetadata(ctx, "bucket", "nightly/db-backup-app.2024-01-02.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(4), meta.SizeBytes)
}

func TestObjectStore_UploadOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, writeLocal(t, "monday v1"), "bucket", "bucket.monday.sql"))
	require.NoError(t, store.Upload(ctx, writeLocal(t, "monday v2"), "bucket", "bucket.monday.sql"))

	dst := filepath.Join(t.TempDir(), "out.sql")
	require.NoError(t, store.Download(ctx, "bucket", "bucket.monday.sql", dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "monday v2", string(data))
}

func TestObjectStore_ListMissingBucket(t *testing.T) {
	store, _ := newTestStore(t)

	objects, err := store.List(context.Background(), "nothing-here", "")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestObjectStore_DeleteRemovesEmptyDirs(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, writeLocal(t, "x"), "bucket", "a/b/db-backup-app.2024-01-01.sql"))
	require.NoError(t, store.Delete(ctx, "bucket", "a/b/db-backup-app.2024-01-01.sql"))

	_, err := os.Stat(filepath.Join(root, "bucket", "a"))
	assert.True(t, os.IsNotExist(err))
	assert.DirExists(t, filepath.Join(root, "bucket"))

	// deleting twice is not an error
	require.NoError(t, store.Delete(ctx, "bucket", "a/b/db-backup-app.2024-01-01.sql"))
}

func TestObjectStore_RejectsEscapingKeys(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Upload(ctx, writeLocal(t, "x"), "bucket", "../../etc/passwd")
	require.NoError(t, err, "keys are cleaned relative to the bucket")

	_, err = store.HeadMetadata(ctx, "bucket", "etc/passwd")
	require.NoError(t, err)

	err = store.Upload(ctx, writeLocal(t, "x"), "../outside", "key.sql")
	var transferErr *domain.TransferError
	require.True(t, errors.As(err, &transferErr))
	assert.Equal(t, "upload", transferErr.Op)
}

func TestObjectStore_HeadMissingObject(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.HeadMetadata(context.Background(), "bucket", "missing.sql")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestObjectStore_DownloadMissingObject(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Download(context.Background(), "bucket", "missing.sql", filepath.Join(t.TempDir(), "out.sql"))
	var transferErr *domain.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, "download", transferErr.Op)
	assert.Equal(t, "missing.sql", transferErr.Key)
}
