package s3

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dbs3/internal/domain"
)

type fakeObject struct {
	data         []byte
	lastModified time.Time
}

// fakeS3 serves the handful of path-style S3 calls the store makes.
type fakeS3 struct {
	mu       sync.Mutex
	bucket   string
	objects  map[string]fakeObject
	pageSize int
	requests []string
}

type listResult struct {
	XMLName               xml.Name      `xml:"ListBucketResult"`
	Name                  string        `xml:"Name"`
	Prefix                string        `xml:"Prefix"`
	KeyCount              int           `xml:"KeyCount"`
	IsTruncated           bool          `xml:"IsTruncated"`
	NextContinuationToken string        `xml:"NextContinuationToken,omitempty"`
	Contents              []listContent `xml:"Contents"`
}

type listContent struct {
	Key          string `xml:"Key"`
	LastModified string `xml:"LastModified"`
	Size         int64  `xml:"Size"`
}

func newFakeS3(bucket string) *fakeS3 {
	return &fakeS3{bucket: bucket, objects: make(map[string]fakeObject), pageSize: 1000}
}

func (f *fakeS3) put(key, data string, lastModified time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = fakeObject{data: []byte(data), lastModified: lastModified}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	bucketPrefix := "/" + f.bucket
	if !strings.HasPrefix(r.URL.Path, bucketPrefix) {
		writeS3Error(w, http.StatusNotFound, "NoSuchBucket")
		return
	}
	key := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, bucketPrefix), "/")

	switch {
	case r.Method == http.MethodGet && key == "" && r.URL.Query().Get("list-type") == "2":
		f.list(w, r)
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = fakeObject{data: body, lastModified: time.Now().UTC()}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodHead:
		obj, ok := f.objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Last-Modified", obj.lastModified.Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.data)))
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		f.get(w, r, key)
	case r.Method == http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeS3Error(w, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func (f *fakeS3) list(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	keys := make([]string, 0)
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	start := 0
	if token := r.URL.Query().Get("continuation-token"); token != "" {
		start, _ = strconv.Atoi(token)
	}
	end := min(start+f.pageSize, len(keys))

	result := listResult{Name: f.bucket, Prefix: prefix}
	for _, key := range keys[start:end] {
		obj := f.objects[key]
		result.Contents = append(result.Contents, listContent{
			Key:          key,
			LastModified: obj.lastModified.Format("2006-01-02T15:04:05.000Z"),
			Size:         int64(len(obj.data)),
		})
	}
	result.KeyCount = len(result.Contents)
	if end < len(keys) {
		result.IsTruncated = true
		result.NextContinuationToken = strconv.Itoa(end)
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(result)
}

func (f *fakeS3) get(w http.ResponseWriter, r *http.Request, key string) {
	obj, ok := f.objects[key]
	if !ok {
		writeS3Error(w, http.StatusNotFound, "NoSuchKey")
		return
	}

	data := obj.data
	w.Header().Set("Last-Modified", obj.lastModified.Format(http.TimeFormat))
	if rng := r.Header.Get("Range"); rng != "" {
		var first, last int
		if _, err := fmt.Sscanf(rng, "bytes=%d-%d", &first, &last); err == nil {
			last = min(last, len(data)-1)
			w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", first, last, len(data)))
			w.Header().Set("Content-Length", strconv.Itoa(last-first+1))
			w.WriteHeader(http.StatusPartialContent)
			_, _ = w.Write(data[first : last+1])
			return
		}
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeS3Error(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message></Error>`, code, code)
}

func newTestStore(t *testing.T, fake *fakeS3) *Store {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewStore(context.Background(), Config{
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		ForcePathStyle:  true,
		MaxAttempts:     1,
	}, zerowrap.Default())
	require.NoError(t, err)
	return store
}

func TestStore_ListFollowsPagination(t *testing.T) {
	fake := newFakeS3("backups")
	fake.pageSize = 2
	modified := time.Date(2024, 1, 20, 2, 0, 0, 0, time.UTC)
	fake.put("nightly/db-backup-app.2024-01-18.sql", "a", modified.Add(-48*time.Hour))
	fake.put("nightly/db-backup-app.2024-01-19.sql", "bb", modified.Add(-24*time.Hour))
	fake.put("nightly/db-backup-app.2024-01-20.sql", "ccc", modified)
	fake.put("nightly/db-backup-other.2024-01-20.sql", "x", modified)
	store := newTestStore(t, fake)

	objects, err := store.List(context.Background(), "backups", "nightly/db-backup-app.")
	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, "nightly/db-backup-app.2024-01-18.sql", objects[0].Key)
	assert.Equal(t, "nightly/db-backup-app.2024-01-20.sql", objects[2].Key)
	assert.Equal(t, int64(3), objects[2].SizeBytes)
	assert.True(t, modified.Equal(objects[2].LastModified))
}

func TestStore_UploadPutsObject(t *testing.T) {
	fake := newFakeS3("backups")
	store := newTestStore(t, fake)

	local := filepath.Join(t.TempDir(), "app.sql")
	require.NoError(t, os.WriteFile(local, []byte("CREATE TABLE t (id int);"), 0600))

	require.NoError(t, store.Upload(context.Background(), local, "backups", "db-backup-app.2024-01-20.sql"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	obj, ok := fake.objects["db-backup-app.2024-01-20.sql"]
	require.True(t, ok)
	assert.Contains(t, string(obj.data), "CREATE TABLE t (id int);")
}

func TestStore_UploadMissingLocalFile(t *testing.T) {
	store := newTestStore(t, newFakeS3("backups"))

	err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.sql"), "backups", "k.sql")
	var transferErr *domain.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, "upload", transferErr.Op)
}

func TestStore_DownloadWritesFile(t *testing.T) {
	fake := newFakeS3("backups")
	fake.put("db-backup-app.2024-01-20.sql", "INSERT INTO t VALUES (1);", time.Now())
	store := newTestStore(t, fake)

	dst := filepath.Join(t.TempDir(), "restore.sql")
	require.NoError(t, store.Download(context.Background(), "backups", "db-backup-app.2024-01-20.sql", dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t VALUES (1);", string(data))

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no partial files left behind")
}

func TestStore_DownloadMissingKey(t *testing.T) {
	store := newTestStore(t, newFakeS3("backups"))
	dst := filepath.Join(t.TempDir(), "restore.sql")

	err := store.Download(context.Background(), "backups", "missing.sql", dst)
	require.Error(t, err)

	var transferErr *domain.TransferError
	require.True(t, errors.As(err, &transferErr))
	assert.Equal(t, "download", transferErr.Op)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.NoFileExists(t, dst)
}

func TestStore_HeadMetadata(t *testing.T) {
	fake := newFakeS3("backups")
	modified := time.Date(2024, 1, 20, 2, 0, 0, 0, time.UTC)
	fake.put("db-backup-app.2024-01-20.sql", "12345", modified)
	store := newTestStore(t, fake)

	meta, err := store.HeadMetadata(context.Background(), "backups", "db-backup-app.2024-01-20.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(5), meta.SizeBytes)
	assert.True(t, modified.Equal(meta.LastModified))

	_, err = store.HeadMetadata(context.Background(), "backups", "missing.sql")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestStore_Delete(t *testing.T) {
	fake := newFakeS3("backups")
	fake.put("db-backup-app.2024-01-01.sql", "old", time.Now())
	store := newTestStore(t, fake)

	require.NoError(t, store.Delete(context.Background(), "backups", "db-backup-app.2024-01-01.sql"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.objects)
	assert.Contains(t, fake.requests, "DELETE /backups/db-backup-app.2024-01-01.sql")
}

func TestStore_ListUnknownBucket(t *testing.T) {
	store := newTestStore(t, newFakeS3("backups"))

	_, err := store.List(context.Background(), "elsewhere", "")
	var transferErr *domain.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, "elsewhere", transferErr.Bucket)
}
