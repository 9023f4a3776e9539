package services

import (
	"strings"
	"testing"
	"time"

	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageService(expiry time.Duration) *ImageService {
	return NewImageService(&config.Config{
		ImageSignKey:     "image-signing-key",
		ImageBaseURL:     "http://localhost:8080/images",
		ImageGrantExpiry: expiry,
	})
}

func TestUploadGrantRoundTrip(t *testing.T) {
	svc := newTestImageService(15 * time.Minute)
	grant := svc.NewUploadGrant("png")

	require.NotEmpty(t, grant.Blob)
	require.NotEmpty(t, grant.Token)
	assert.True(t, strings.HasSuffix(grant.Blob, ".png"))
	assert.Contains(t, grant.URL, grant.Blob)

	assert.True(t, svc.Verify(grant.Blob, grant.ExpiresAt.Unix(), grant.Token))
}

func TestUploadGrantTampered(t *testing.T) {
	svc := newTestImageService(15 * time.Minute)
	grant := svc.NewUploadGrant("png")

	assert.False(t, svc.Verify("other-blob", grant.ExpiresAt.Unix(), grant.Token))
	assert.False(t, svc.Verify(grant.Blob, grant.ExpiresAt.Unix(), "forged"))
	assert.False(t, svc.Verify(grant.Blob, grant.ExpiresAt.Add(time.Hour).Unix(), grant.Token))
}

func TestUploadGrantExpired(t *testing.T) {
	svc := newTestImageService(-time.Minute)
	grant := svc.NewUploadGrant("png")

	assert.False(t, svc.Verify(grant.Blob, grant.ExpiresAt.Unix(), grant.Token))
}
