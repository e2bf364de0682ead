package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"pharmacist/core/storage"

	"github.com/minio/minio-go/v7"
)

// Config holds configuration for the game database source.
type Config struct {
	// Path is the local database directory; used when Bucket is empty.
	Path string `mapstructure:"path" default:"./database"`
	// Bucket is an object-storage bucket holding the database; when set it
	// takes precedence over Path.
	Bucket string `mapstructure:"bucket" default:""`
	// Prefix is the object key prefix inside the bucket.
	Prefix string `mapstructure:"prefix" default:"database"`
	// Locale is the language whose string table is loaded for display names.
	Locale string `mapstructure:"locale" default:"en"`
}

// Source abstracts where the database files live. Names are slash-separated
// paths relative to the database root, e.g. "templates/items.json".
type Source interface {
	// Read returns the contents of one file. A missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	Read(ctx context.Context, name string) ([]byte, error)
	// Write stores one file, creating parents as needed.
	Write(ctx context.Context, name string, data []byte) error
	// List returns the names of the immediate children of a directory.
	List(ctx context.Context, dir string) ([]string, error)
}

// NewSource picks the source implied by the configuration: a bucket when one
// is configured, the local directory otherwise. The storage client may be
// nil for directory sources.
func NewSource(cfg Config, client storage.Client) (Source, error) {
	if cfg.Bucket != "" {
		if client == nil {
			return nil, fmt.Errorf("bucket %q configured but no storage client available", cfg.Bucket)
		}
		return &BucketSource{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("no database source configured")
	}
	return &DirSource{Root: cfg.Path}, nil
}

// DirSource reads and writes the database from a local directory tree.
type DirSource struct {
	Root string
}

func (s *DirSource) Read(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(name)))
}

func (s *DirSource) Write(_ context.Context, name string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (s *DirSource) List(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, filepath.FromSlash(dir)))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// BucketSource reads and writes the database from object storage.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

func (s *BucketSource) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *BucketSource) Read(ctx context.Context, name string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *BucketSource) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		s.key(name),
		io.NopCloser(bytes.NewReader(data)),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *BucketSource) List(ctx context.Context, dir string) ([]string, error) {
	prefix := s.key(dir)
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	var names []string
	seen := make(map[string]struct{})
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		name = strings.TrimSuffix(name, "/")
		if i := strings.IndexByte(name, '/'); i >= 0 {
			name = name[:i]
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
