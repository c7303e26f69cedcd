package httpdto

import "nimbus-chat/internal/domain/upload"

// UploadCredentialsResponse is returned by GET /api/upload for the
// client-side CDN upload widget.
type UploadCredentialsResponse struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

func FromCredentials(c upload.Credentials) UploadCredentialsResponse {
	return UploadCredentialsResponse{
		Token:     c.Token,
		Expire:    c.Expire,
		Signature: c.Signature,
	}
}
