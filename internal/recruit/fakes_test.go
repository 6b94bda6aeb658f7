package recruit

import (
	"context"
	"errors"
	"sync"

	"github.com/openvenue/recruiter/internal/channel"
	"github.com/openvenue/recruiter/internal/directory"
)

// fakeDirectory resolves profiles from a fixed map. Missing ids return
// ErrNotFound; err overrides everything when set.
type fakeDirectory struct {
	profiles map[string]*directory.Profile
	err      error
}

func (d *fakeDirectory) Resolve(ctx context.Context, profileID string) (*directory.Profile, error) {
	if d.err != nil {
		return nil, d.err
	}
	p, ok := d.profiles[profileID]
	if !ok {
		return nil, directory.ErrNotFound
	}
	return p, nil
}

// fakeMembership serves group memberships from a fixed map.
type fakeMembership struct {
	groups map[string][]string
	err    error
}

func (m *fakeMembership) GroupsContaining(ctx context.Context, member, venuePrefix string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.groups[member], nil
}

// fakeSender records every send and fails the addresses in failFor.
type fakeSender struct {
	mu          sync.Mutex
	sent        []*channel.Message
	failFor     map[string]bool
	errFor      map[string]bool
	inFlight    int
	maxInFlight int
	block       chan struct{} // when set, sends wait until closed
}

func (s *fakeSender) Send(ctx context.Context, msg *channel.Message) (*channel.SendResult, error) {
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}

	s.mu.Lock()
	s.inFlight--
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	if s.errFor[msg.To] {
		return nil, errors.New("channel exploded")
	}
	if s.failFor[msg.To] {
		return &channel.SendResult{Success: false, Error: errors.New("mailbox rejected")}, nil
	}
	return &channel.SendResult{Success: true, MessageID: "mid-" + msg.To}, nil
}

func (s *fakeSender) sentTo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tos := make([]string, len(s.sent))
	for i, m := range s.sent {
		tos[i] = m.To
	}
	return tos
}

// fakeRecords captures published payloads.
type fakeRecords struct {
	mu       sync.Mutex
	parents  []string
	payloads []interface{}
	err      error
}

func (r *fakeRecords) Publish(ctx context.Context, parentID string, payload interface{}) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.parents = append(r.parents, parentID)
	r.payloads = append(r.payloads, payload)
	return "rec-1", nil
}

func testContext() CommitteeContext {
	return CommitteeContext{
		VenuePrefix:        "VENUE/2026",
		InvitedGroupID:     "VENUE/2026/Reviewers/Invited",
		MemberGroupID:      "VENUE/2026/Reviewers",
		SecretSeed:         "s3cret-seed",
		SubjectTemplate:    "[VENUE 2026] Invitation for {{fullname}}",
		BodyTemplate:       "Dear {{fullname}},\n\nPlease respond: {{invitation_url}}\n",
		ResponseEndpointID: "VENUE/2026/-/Recruit_Reviewers",
		InviteBaseURL:      "https://venue.example.com/invitation",
		FromName:           "VENUE Chairs",
		FromEmail:          "chairs@venue.example.com",
		ChairEmails:        []string{"chair@venue.example.com"},
		RecordParentID:     "request-42",
	}
}
