// Package recruit implements the committee recruitment invitation
// dispatch engine: parsing invitee lists, resolving identities,
// classifying them against venue membership, and fanning out keyed
// invitation email.
package recruit

import "strings"

// ProfileIDSigil prefixes directory profile identifiers in invitee input.
const ProfileIDSigil = "~"

// InviteeLine is one logical entry from the raw invitee text.
type InviteeLine struct {
	RawIdentifier string
	DisplayName   string
}

// IsProfileID reports whether the line's identifier must be resolved
// through the directory.
func (l InviteeLine) IsProfileID() bool {
	return strings.HasPrefix(l.RawIdentifier, ProfileIDSigil)
}

// FailureKind classifies a terminal identity-resolution failure.
type FailureKind string

const (
	FailureInvalidProfileID     FailureKind = "InvalidProfileId"
	FailureProfileNotFound      FailureKind = "ProfileNotFound"
	FailureProfileHasNoEmail    FailureKind = "ProfileHasNoEmail"
	FailureDirectoryUnavailable FailureKind = "DirectoryUnavailable"
)

// ResolvedIdentity is the outcome of resolving one InviteeLine.
// Exactly one of the two cases holds: Failure is non-empty and the
// identity fields are zero, or Failure is empty and Emails is non-empty.
type ResolvedIdentity struct {
	// ProfileID is set when the identity came from a directory profile.
	ProfileID string
	// FullName is the directory profile name, when known.
	FullName string
	// Emails holds the profile's verified emails, or the single literal
	// address for bare-email identifiers. Normalized to lower case.
	Emails []string
	// Failure is the resolution failure kind, empty on success.
	Failure FailureKind
}

// Failed reports whether resolution ended in a terminal failure.
func (r ResolvedIdentity) Failed() bool { return r.Failure != "" }

// PrimaryEmail returns the address invitations are sent to.
func (r ResolvedIdentity) PrimaryEmail() string {
	if len(r.Emails) == 0 {
		return ""
	}
	return r.Emails[0]
}

// MembershipKey returns the identifier used for membership lookups:
// the profile id when present, the email otherwise.
func (r ResolvedIdentity) MembershipKey() string {
	if r.ProfileID != "" {
		return r.ProfileID
	}
	return r.PrimaryEmail()
}

// Outcome is the terminal per-entry classification.
type Outcome string

const (
	OutcomeEligible       Outcome = "eligible"
	OutcomeAlreadyInvited Outcome = "already_invited"
	OutcomeAlreadyMember  Outcome = "already_member"
	OutcomeError          Outcome = "error"
)

// ClassificationResult is the authoritative record of what happened to
// one input line before dispatch.
type ClassificationResult struct {
	Line     InviteeLine
	Identity ResolvedIdentity
	Outcome  Outcome
	// GroupID names the group that caused an already-* outcome.
	GroupID string
}

// DispatchOutcome is the per-candidate result of the send stage.
type DispatchOutcome struct {
	Email     string `json:"email"`
	Delivered bool   `json:"delivered"`
	Token     string `json:"-"`
	Err       string `json:"error,omitempty"`
}

// CommitteeContext carries everything one dispatch run needs about the
// target committee. No ambient platform state is consulted.
type CommitteeContext struct {
	VenuePrefix        string   `json:"venue_prefix"`
	InvitedGroupID     string   `json:"invited_group_id"`
	MemberGroupID      string   `json:"member_group_id"`
	SecretSeed         string   `json:"secret_seed"`
	SubjectTemplate    string   `json:"subject_template"`
	BodyTemplate       string   `json:"body_template"`
	ResponseEndpointID string   `json:"response_endpoint_id"`
	InviteBaseURL      string   `json:"invite_base_url"`
	FromName           string   `json:"from_name"`
	FromEmail          string   `json:"from_email"`
	ChairEmails        []string `json:"chair_emails"`
	RecordParentID     string   `json:"record_parent_id"`
}

// RecruitmentStatus is the batch-level report published at the end of a
// run. Bucket lists preserve original input order.
type RecruitmentStatus struct {
	RunID          string              `json:"run_id"`
	InvitedCount   int                 `json:"invited_count"`
	AlreadyInvited map[string][]string `json:"already_invited,omitempty"`
	AlreadyMember  map[string][]string `json:"already_member,omitempty"`
	Errors         map[string][]string `json:"errors,omitempty"`
	// FailedDeliveries lists eligible candidates whose send failed, so
	// chairs can retry them manually. They are not counted as invited.
	FailedDeliveries []string `json:"failed_deliveries,omitempty"`
	// RecordID is the durable record id, empty if publication failed.
	RecordID string `json:"record_id,omitempty"`
}
