package recruit

import (
	"context"

	"github.com/openvenue/recruiter/internal/membership"
	"github.com/openvenue/recruiter/internal/pkg/logger"
)

// Classifier decides whether a resolved identity is new to the target
// committee, already invited, or already a member.
type Classifier struct {
	store membership.Store
}

// NewClassifier creates a classifier backed by the given membership store.
func NewClassifier(store membership.Store) *Classifier {
	return &Classifier{store: store}
}

// Classify computes the verdict for a successfully resolved identity.
// A membership-store failure is treated as no memberships found: a
// transient store error must not block recruiting a legitimately new
// person, and a duplicate invite is the cheaper mistake.
func (c *Classifier) Classify(ctx context.Context, identity ResolvedIdentity, cc CommitteeContext) (Outcome, string) {
	groups, err := c.store.GroupsContaining(ctx, identity.MembershipKey(), cc.VenuePrefix)
	if err != nil {
		logger.Warn("membership lookup failed, treating candidate as new",
			"member", identity.MembershipKey(), "err", err.Error())
		groups = nil
	}

	inGroup := make(map[string]bool, len(groups))
	for _, g := range groups {
		inGroup[g] = true
	}

	// Invited takes precedence: an invited-but-not-yet-accepted candidate
	// must not be reported as a plain member.
	if inGroup[cc.InvitedGroupID] {
		return OutcomeAlreadyInvited, cc.InvitedGroupID
	}
	if inGroup[cc.MemberGroupID] {
		return OutcomeAlreadyMember, cc.MemberGroupID
	}
	return OutcomeEligible, ""
}
