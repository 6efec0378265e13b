// internal/objectstore/cloudinary.go
package objectstore

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements ObjectStorage backed by Cloudinary.
type CloudinaryStore struct {
	cld        *cloudinary.Cloudinary
	baseFolder string
}

// NewCloudinaryStore creates a store from a cloudinary:// URL. baseFolder is
// prefixed to every upload folder so environments don't collide.
func NewCloudinaryStore(cloudinaryURL, baseFolder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryStore{cld: cld, baseFolder: baseFolder}, nil
}

// Compile-time check to ensure CloudinaryStore implements ObjectStorage
var _ ObjectStorage = (*CloudinaryStore)(nil)

// Upload stores the file and returns its public URL and ID.
func (s *CloudinaryStore) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	folder := in.Folder
	if s.baseFolder != "" {
		folder = s.baseFolder + "/" + in.Folder
	}

	resp, err := s.cld.Upload.Upload(ctx, in.File, uploader.UploadParams{
		Folder:       folder,
		PublicID:     in.PublicID,
		ResourceType: string(in.ResourceType),
	})
	if err != nil {
		log.Printf("Error uploading file to cloudinary (folder %s): %v\n", folder, err)
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &Object{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
	}, nil
}

// Delete removes a stored file. Missing files are not an error; Cloudinary
// reports "not found" in the result body and we treat the file as gone.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string, resourceType ResourceType) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(resourceType),
	})
	if err != nil {
		log.Printf("Error deleting file %s from cloudinary: %v\n", publicID, err)
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}
