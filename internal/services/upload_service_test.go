package services

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCredentialsSignatureVerifies(t *testing.T) {
	svc := NewUploadService("private-key", 30*time.Minute)

	creds, err := svc.Credentials()
	require.NoError(t, err)
	require.NotEmpty(t, creds.Token)
	require.Greater(t, creds.Expire, time.Now().Unix())

	mac := hmac.New(sha1.New, []byte("private-key"))
	mac.Write([]byte(creds.Token + strconv.FormatInt(creds.Expire, 10)))
	require.Equal(t, hex.EncodeToString(mac.Sum(nil)), creds.Signature)
}

func TestCredentialsTokensAreUnique(t *testing.T) {
	svc := NewUploadService("private-key", time.Minute)

	a, err := svc.Credentials()
	require.NoError(t, err)
	b, err := svc.Credentials()
	require.NoError(t, err)
	require.NotEqual(t, a.Token, b.Token)
}

func TestCredentialsRequireConfiguredKey(t *testing.T) {
	svc := NewUploadService("", time.Minute)

	_, err := svc.Credentials()
	require.Error(t, err)
}
