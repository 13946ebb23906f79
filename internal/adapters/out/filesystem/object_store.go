// Package filesystem implements the object store on a local directory tree.
// Each bucket is a sub-directory of the root and each key a relative path.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/domain"
)

const tmpSuffix = ".tmp"

// ObjectStore implements out.ObjectStore on the local filesystem.
type ObjectStore struct {
	rootDir string
	log     zerowrap.Logger
}

// NewObjectStore creates a filesystem object store rooted at rootDir.
func NewObjectStore(rootDir string, log zerowrap.Logger) (*ObjectStore, error) {
	rootDir = ExpandTilde(rootDir)

	if err := os.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create object root: %w", err)
	}

	return &ObjectStore{rootDir: rootDir, log: log}, nil
}

// ExpandTilde replaces a leading "~/" with the user's home directory.
func ExpandTilde(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, p[2:])
	}
	return p
}

// List returns every object in bucket whose key starts with keyPrefix.
func (s *ObjectStore) List(ctx context.Context, bucket, keyPrefix string) ([]domain.BackupObject, error) {
	bucketDir, err := s.bucketDir(bucket)
	if err != nil {
		return nil, transferErr("list", bucket, "", err)
	}
	if _, err := os.Stat(bucketDir); err != nil {
		if os.IsNotExist(err) {
			return []domain.BackupObject{}, nil
		}
		return nil, transferErr("list", bucket, "", err)
	}

	objects := make([]domain.BackupObject, 0)
	err = filepath.WalkDir(bucketDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, tmpSuffix) {
			return nil
		}

		rel, err := filepath.Rel(bucketDir, p)
		if err != nil {
			return nil
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, keyPrefix) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		objects = append(objects, domain.BackupObject{
			Key:          key,
			LastModified: info.ModTime().UTC(),
			SizeBytes:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, transferErr("list", bucket, "", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("bucket", bucket).
		Str("prefix", keyPrefix).
		Int(zerowrap.FieldCount, len(objects)).
		Msg("listed objects")
	return objects, nil
}

// Upload copies localPath into the bucket. The object appears atomically.
func (s *ObjectStore) Upload(_ context.Context, localPath, bucket, key string) error {
	objectPath, err := s.objectPath(bucket, key)
	if err != nil {
		return transferErr("upload", bucket, key, err)
	}
	if err := os.MkdirAll(filepath.Dir(objectPath), 0750); err != nil {
		return transferErr("upload", bucket, key, fmt.Errorf("failed to create object path: %w", err))
	}
	if err := copyFileAtomic(localPath, objectPath); err != nil {
		return transferErr("upload", bucket, key, err)
	}
	return nil
}

// Download copies an object to localPath.
func (s *ObjectStore) Download(_ context.Context, bucket, key, localPath string) error {
	objectPath, err := s.objectPath(bucket, key)
	if err != nil {
		return transferErr("download", bucket, key, err)
	}
	if err := copyFileAtomic(objectPath, localPath); err != nil {
		return transferErr("download", bucket, key, err)
	}
	return nil
}

// Delete removes an object and any directories it leaves empty.
func (s *ObjectStore) Delete(_ context.Context, bucket, key string) error {
	objectPath, err := s.objectPath(bucket, key)
	if err != nil {
		return transferErr("delete", bucket, key, err)
	}
	if err := os.Remove(objectPath); err != nil && !os.IsNotExist(err) {
		return transferErr("delete", bucket, key, err)
	}

	bucketDir, _ := s.bucketDir(bucket)
	if err := removeEmptyDirs(bucketDir, filepath.Dir(objectPath)); err != nil {
		return transferErr("delete", bucket, key, err)
	}
	return nil
}

// HeadMetadata returns the modification time and size of an object.
func (s *ObjectStore) HeadMetadata(_ context.Context, bucket, key string) (domain.ObjectMetadata, error) {
	objectPath, err := s.objectPath(bucket, key)
	if err != nil {
		return domain.ObjectMetadata{}, transferErr("head", bucket, key, err)
	}
	info, err := os.Stat(objectPath)
	if err != nil {
		return domain.ObjectMetadata{}, transferErr("head", bucket, key, err)
	}
	return domain.ObjectMetadata{LastModified: info.ModTime().UTC(), SizeBytes: info.Size()}, nil
}

func (s *ObjectStore) bucketDir(bucket string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || strings.Trim(bucket, ".") == "" {
		return "", fmt.Errorf("invalid bucket name %q", bucket)
	}
	return filepath.Join(s.rootDir, bucket), nil
}

func (s *ObjectStore) objectPath(bucket, key string) (string, error) {
	bucketDir, err := s.bucketDir(bucket)
	if err != nil {
		return "", err
	}
	cleanKey := path.Clean("/" + key)
	if key == "" || cleanKey == "/" || strings.HasSuffix(key, tmpSuffix) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	p := filepath.Join(bucketDir, filepath.FromSlash(cleanKey[1:]))
	if !pathWithinRoot(bucketDir, p) {
		return "", fmt.Errorf("object key escapes bucket")
	}
	return p, nil
}

func copyFileAtomic(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmpPath := dst + tmpSuffix
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, in); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize file: %w", err)
	}
	return nil
}

func removeEmptyDirs(stopAt, dir string) error {
	for {
		if !pathWithinRoot(stopAt, dir) || filepath.Clean(dir) == filepath.Clean(stopAt) {
			return nil
		}

		err := os.Remove(dir)
		if err == nil {
			dir = filepath.Dir(dir)
			continue
		}
		if os.IsNotExist(err) {
			return nil
		}
		if errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST) {
			return nil
		}
		return err
	}
}

func pathWithinRoot(root, p string) bool {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	pathAbs, err := filepath.Abs(p)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(filepath.Clean(rootAbs), filepath.Clean(pathAbs))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func transferErr(op, bucket, key string, err error) error {
	return &domain.TransferError{Op: op, Bucket: bucket, Key: key, Err: err}
}
