package services

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"nimbus-chat/internal/domain/upload"
)

type UploadService struct {
	privateKey []byte
	tokenTTL   time.Duration
}

func NewUploadService(privateKey string, tokenTTL time.Duration) *UploadService {
	return &UploadService{privateKey: []byte(privateKey), tokenTTL: tokenTTL}
}

// Credentials derives the CDN widget auth parameters: a one-time token,
// a unix expiry, and signature = HMAC-SHA1(privateKey, token+expire).
func (s *UploadService) Credentials() (upload.Credentials, error) {
	if len(s.privateKey) == 0 {
		return upload.Credentials{}, errors.New("upload private key is not configured")
	}

	token := uuid.New().String()
	expire := time.Now().Add(s.tokenTTL).Unix()

	mac := hmac.New(sha1.New, s.privateKey)
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return upload.Credentials{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}
