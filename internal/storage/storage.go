// Package storage persists merchant-uploaded product images and hands back
// the public URL the catalog embeds. Two drivers exist: local disk for
// development and S3 for production.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupportedType is returned for uploads that are not one of the
// accepted image formats.
var ErrUnsupportedType = errors.New("unsupported image type")

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}

// imageExt maps an accepted content type to the extension stored keys use.
// Filenames from the browser are untrusted; the content type decides.
func imageExt(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg":
		return ".jpg", true
	case "image/webp":
		return ".webp", true
	case "image/gif":
		return ".gif", true
	default:
		return "", false
	}
}
