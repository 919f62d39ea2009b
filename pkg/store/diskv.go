package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// DiskvSink stores each key as a file below a base directory. The key
// moods-2024-03 lives at <base>/moods/2024/03.
type DiskvSink struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

// NewDiskvSink opens (and lazily creates) a sink rooted at basePath.
func NewDiskvSink(basePath string, log *zap.Logger) (*DiskvSink, error) {
	if basePath == "" {
		return nil, errors.New("store: diskv base path is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DiskvSink{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other processes write the same files; a cache would serve
			// stale months after a watch event.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      log,
	}, nil
}

// BasePath is the directory the sink writes under.
func (s *DiskvSink) BasePath() string { return s.basePath }

func (s *DiskvSink) Read(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *DiskvSink) Write(_ context.Context, key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvSink) Delete(_ context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (s *DiskvSink) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if !hasKindPrefix(key) {
			continue
		}
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (s *DiskvSink) Close() error { return nil }

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
