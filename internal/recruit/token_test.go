package recruit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInviteTokenDeterministic(t *testing.T) {
	a := InviteToken("seed", "alice@x.com")
	b := InviteToken("seed", "alice@x.com")
	assert.Equal(t, a, b, "same seed and email must yield the same token")
	assert.Len(t, a, 64, "hex-encoded HMAC-SHA256")
}

func TestInviteTokenVariesWithInputs(t *testing.T) {
	base := InviteToken("seed", "alice@x.com")
	assert.NotEqual(t, base, InviteToken("seed", "bob@x.com"))
	assert.NotEqual(t, base, InviteToken("other-seed", "alice@x.com"))
}

func TestInvitationURLFormat(t *testing.T) {
	token := "deadbeef"
	url := InvitationURL("https://venue.example.com/invitation", "VENUE/2026/-/Recruit_Reviewers", "alice+a@x.com", token)

	assert.Equal(t,
		"https://venue.example.com/invitation?id=VENUE%2F2026%2F-%2FRecruit_Reviewers&user=alice%2Ba%40x.com&key=deadbeef",
		url)
}
