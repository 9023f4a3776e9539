package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/longkerdandy/burger-backend/internal/config"
)

// UploadGrant is a time-limited, signed permission to upload one blob.
type UploadGrant struct {
	Blob      string    `json:"blob"`
	URL       string    `json:"url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ImageService issues HMAC-signed upload grants for image blobs. The
// blob store verifies the signature with the shared key; this service
// never touches blob data itself.
type ImageService struct {
	signKey []byte
	baseURL string
	expiry  time.Duration
}

func NewImageService(cfg *config.Config) *ImageService {
	return &ImageService{
		signKey: []byte(cfg.ImageSignKey),
		baseURL: cfg.ImageBaseURL,
		expiry:  cfg.ImageGrantExpiry,
	}
}

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
}

// ValidImageExtension reports whether ext names a supported image type.
func ValidImageExtension(ext string) bool {
	return imageExtensions[ext]
}

// NewUploadGrant mints a grant for a fresh random blob name with the
// given extension.
func (s *ImageService) NewUploadGrant(ext string) *UploadGrant {
	blob := uuid.New().String() + "." + ext
	expiresAt := time.Now().Add(s.expiry).UTC()
	token := s.sign(blob, expiresAt.Unix())

	return &UploadGrant{
		Blob:      blob,
		URL:       fmt.Sprintf("%s/%s?exp=%d&sig=%s", s.baseURL, blob, expiresAt.Unix(), token),
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

// Verify checks a presented grant token against the blob name and
// expiry timestamp.
func (s *ImageService) Verify(blob string, expUnix int64, token string) bool {
	if time.Now().Unix() > expUnix {
		return false
	}
	expected := s.sign(blob, expUnix)
	return hmac.Equal([]byte(expected), []byte(token))
}

func (s *ImageService) sign(blob string, expUnix int64) string {
	mac := hmac.New(sha256.New, s.signKey)
	fmt.Fprintf(mac, "%s:%d", blob, expUnix)
	return hex.EncodeToString(mac.Sum(nil))
}
