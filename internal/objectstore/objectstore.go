// internal/objectstore/objectstore.go
package objectstore

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// ResourceType selects the storage pipeline for an upload. Images get the
// image pipeline (transformations, CDN variants); everything else is stored
// as an opaque blob.
type ResourceType string

const (
	ResourceTypeImage ResourceType = "image"
	ResourceTypeRaw   ResourceType = "raw"
)

// UploadInput carries one file into the store.
type UploadInput struct {
	File         io.Reader
	Folder       string
	PublicID     string
	ResourceType ResourceType
}

// Object is the stored result. URL is publicly fetchable; PublicID is what
// Delete needs.
type Object struct {
	PublicID string
	URL      string
}

// ObjectStorage abstracts the external file store so services never touch the
// vendor SDK directly.
type ObjectStorage interface {
	Upload(ctx context.Context, in UploadInput) (*Object, error)
	Delete(ctx context.Context, publicID string, resourceType ResourceType) error
}

// PublicIDFromURL recovers the public ID from a stored delivery URL, so
// records only need to persist the URL. Image URLs carry a file extension
// that is not part of the public ID; raw URLs keep theirs.
func PublicIDFromURL(rawURL string, resourceType ResourceType) string {
	const marker = "/upload/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return ""
	}
	id := rawURL[idx+len(marker):]

	// Strip the version segment ("v1234567890/") if present.
	if strings.HasPrefix(id, "v") {
		if slash := strings.IndexByte(id, '/'); slash > 1 {
			if _, err := strconv.Atoi(id[1:slash]); err == nil {
				id = id[slash+1:]
			}
		}
	}

	if resourceType == ResourceTypeImage {
		if dot := strings.LastIndexByte(id, '.'); dot > 0 {
			id = id[:dot]
		}
	}
	return id
}
