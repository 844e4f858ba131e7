package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Local writes images under BaseDir and serves them from URLPrefix.
// Keys are sharded by upload month so a long-lived dev directory stays
// browsable.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	ext, ok := imageExt(in.ContentType)
	if !ok {
		return PutResult{}, ErrUnsupportedType
	}

	shard := time.Now().UTC().Format("2006/01")
	if err := os.MkdirAll(filepath.Join(l.BaseDir, filepath.FromSlash(shard)), 0o755); err != nil {
		return PutResult{}, fmt.Errorf("create upload dir: %w", err)
	}

	key := shard + "/" + uuid.NewString() + ext
	dst := filepath.Join(l.BaseDir, filepath.FromSlash(key))

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return PutResult{}, fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return PutResult{}, fmt.Errorf("write upload: %w", err)
	}

	return PutResult{Key: key, URL: l.URLPrefix + "/" + key}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	clean := path.Clean("/" + key)
	return os.Remove(filepath.Join(l.BaseDir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
