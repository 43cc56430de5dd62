// Package storage keeps villa images in an S3-compatible object store.
// Uploads stream straight through; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDisabled is returned by the disabled store used when no endpoint is configured.
var ErrDisabled = errors.New("image storage is not configured")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Metadata    map[string]string
}

// ImageStore is the object storage used for villa images.
type ImageStore interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageKey returns a fresh object key for an image of villa villaID,
// keeping the extension of the uploaded file name.
func ImageKey(villaID int, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("villas/%d/%s%s", villaID, uuid.NewString(), ext)
}

// Disabled returns a store that rejects every call with ErrDisabled.
func Disabled() ImageStore { return disabled{} }

type disabled struct{}

func (disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (disabled) Delete(context.Context, string) error { return ErrDisabled }

func (disabled) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", ErrDisabled
}
