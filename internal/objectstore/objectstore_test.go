package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		resourceType ResourceType
		expected     string
	}{
		{
			name:         "Image With Version And Extension",
			url:          "https://res.cloudinary.com/demo/image/upload/v1712345678/portal/profiles/abc123.png",
			resourceType: ResourceTypeImage,
			expected:     "portal/profiles/abc123",
		},
		{
			name:         "Raw Keeps Extension",
			url:          "https://res.cloudinary.com/demo/raw/upload/v1712345678/portal/resumes/abc123.pdf",
			resourceType: ResourceTypeRaw,
			expected:     "portal/resumes/abc123.pdf",
		},
		{
			name:         "No Version Segment",
			url:          "https://res.cloudinary.com/demo/image/upload/portal/logos/xyz.jpg",
			resourceType: ResourceTypeImage,
			expected:     "portal/logos/xyz",
		},
		{
			name:         "Folder Starting With V Is Not A Version",
			url:          "https://res.cloudinary.com/demo/raw/upload/vault/doc1",
			resourceType: ResourceTypeRaw,
			expected:     "vault/doc1",
		},
		{
			name:         "Not An Upload URL",
			url:          "https://example.com/files/abc123.pdf",
			resourceType: ResourceTypeRaw,
			expected:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PublicIDFromURL(tt.url, tt.resourceType))
		})
	}
}
