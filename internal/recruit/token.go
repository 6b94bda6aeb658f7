package recruit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
)

// InviteToken derives the deterministic invitation token for an email
// under the committee's secret seed: hex(HMAC-SHA256(seed, email)).
// Resending an invitation reproduces the same token, so earlier links
// stay valid.
func InviteToken(seed, email string) string {
	h := hmac.New(sha256.New, []byte(seed))
	h.Write([]byte(email))
	return hex.EncodeToString(h.Sum(nil))
}

// InvitationURL builds the single-use invitation link consumed by the
// response endpoint. The query shape is a wire contract:
// <base>?id=<endpoint>&user=<escaped user>&key=<token>.
func InvitationURL(base, responseEndpointID, user, token string) string {
	return fmt.Sprintf("%s?id=%s&user=%s&key=%s",
		base, url.QueryEscape(responseEndpointID), url.QueryEscape(user), token)
}
