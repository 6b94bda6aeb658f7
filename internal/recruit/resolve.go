package recruit

import (
	"context"
	"errors"
	"strings"

	"github.com/openvenue/recruiter/internal/directory"
	"github.com/openvenue/recruiter/internal/pkg/logger"
)

// DirectoryClient is the slice of the identity directory this engine
// needs. *directory.Client satisfies it.
type DirectoryClient interface {
	Resolve(ctx context.Context, profileID string) (*directory.Profile, error)
}

// Resolver turns invitee lines into resolved identities. Directory
// errors never escape; they become typed failure kinds on the identity.
type Resolver struct {
	dir DirectoryClient
}

// NewResolver creates a resolver backed by the given directory client.
func NewResolver(dir DirectoryClient) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve resolves one invitee line. Identifiers carrying the profile
// sigil cost exactly one directory read; bare emails cost none and get
// no syntactic validation (the delivery channel rejects bad addresses).
func (r *Resolver) Resolve(ctx context.Context, line InviteeLine) ResolvedIdentity {
	if !line.IsProfileID() {
		return ResolvedIdentity{Emails: []string{normalizeEmail(line.RawIdentifier)}}
	}

	profile, err := r.dir.Resolve(ctx, line.RawIdentifier)
	switch {
	case errors.Is(err, directory.ErrInvalidID):
		return ResolvedIdentity{Failure: FailureInvalidProfileID}
	case errors.Is(err, directory.ErrNotFound):
		return ResolvedIdentity{Failure: FailureProfileNotFound}
	case err != nil:
		logger.Warn("directory lookup failed", "profile_id", line.RawIdentifier, "err", err.Error())
		return ResolvedIdentity{Failure: FailureDirectoryUnavailable}
	}

	if len(profile.VerifiedEmails) == 0 {
		return ResolvedIdentity{Failure: FailureProfileHasNoEmail}
	}

	emails := make([]string, len(profile.VerifiedEmails))
	for i, e := range profile.VerifiedEmails {
		emails[i] = normalizeEmail(e)
	}

	return ResolvedIdentity{
		ProfileID: profile.ID,
		FullName:  profile.FullName,
		Emails:    emails,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
