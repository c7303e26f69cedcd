package upload

// Credentials are the signed parameters a client passes to the CDN
// upload widget. They are derived, never persisted.
type Credentials struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}
