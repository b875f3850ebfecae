package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// VKIdentity is the caller described by verified VK Mini App launch
// parameters.
type VKIdentity struct {
	UserID   int64
	AppID    int64
	Platform string
}

// VKVerifier checks the signature of VK Mini App launch parameters.
type VKVerifier struct {
	secret []byte
}

// NewVKVerifier creates a verifier for the app's protected key.
func NewVKVerifier(secret string) *VKVerifier {
	return &VKVerifier{secret: []byte(secret)}
}

// Verify validates a launch-parameter query string such as
// "vk_user_id=1&vk_app_id=2&sign=...". The signature is an HMAC-SHA256 of
// the sorted, url-encoded vk_* parameters, encoded as unpadded URL-safe
// base64. Every failure wraps domain.ErrUnauthorized.
func (v *VKVerifier) Verify(launchParams string) (*VKIdentity, error) {
	query, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(launchParams), "?"))
	if err != nil {
		return nil, fmt.Errorf("parse launch params: %w", domain.ErrUnauthorized)
	}

	sign := query.Get("sign")
	if sign == "" {
		return nil, fmt.Errorf("missing sign: %w", domain.ErrUnauthorized)
	}

	signed := url.Values{}
	for key, values := range query {
		if strings.HasPrefix(key, "vk_") && len(values) > 0 {
			signed.Set(key, values[0])
		}
	}
	if len(signed) == 0 {
		return nil, fmt.Errorf("no vk_ params: %w", domain.ErrUnauthorized)
	}

	if !hmac.Equal([]byte(v.sign(signed)), []byte(sign)) {
		return nil, fmt.Errorf("invalid sign: %w", domain.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(signed.Get("vk_user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("invalid vk_user_id: %w", domain.ErrUnauthorized)
	}
	appID, _ := strconv.ParseInt(signed.Get("vk_app_id"), 10, 64)

	return &VKIdentity{
		UserID:   userID,
		AppID:    appID,
		Platform: signed.Get("vk_platform"),
	}, nil
}

// sign computes the expected signature. Encode sorts by key.
func (v *VKVerifier) sign(params url.Values) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(params.Encode()))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
