package recruit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatusBuckets(t *testing.T) {
	cc := testContext()
	results := []ClassificationResult{
		{
			Line:     InviteeLine{RawIdentifier: "~Bad_Profile1"},
			Identity: ResolvedIdentity{Failure: FailureProfileNotFound},
			Outcome:  OutcomeError,
		},
		{
			Line:     InviteeLine{RawIdentifier: "carol@y.com"},
			Identity: ResolvedIdentity{Emails: []string{"carol@y.com"}},
			Outcome:  OutcomeAlreadyInvited,
			GroupID:  cc.InvitedGroupID,
		},
		{
			Line:     InviteeLine{RawIdentifier: "frank@q.com"},
			Identity: ResolvedIdentity{Emails: []string{"frank@q.com"}},
			Outcome:  OutcomeAlreadyMember,
			GroupID:  cc.MemberGroupID,
		},
		{
			Line:     InviteeLine{RawIdentifier: "dave@z.com"},
			Identity: ResolvedIdentity{Emails: []string{"dave@z.com"}},
			Outcome:  OutcomeEligible,
		},
		{
			Line:     InviteeLine{RawIdentifier: "eve@w.com"},
			Identity: ResolvedIdentity{Emails: []string{"eve@w.com"}},
			Outcome:  OutcomeEligible,
		},
	}
	outcomes := []DispatchOutcome{
		{Email: "dave@z.com", Delivered: true},
		{Email: "eve@w.com", Delivered: false, Err: "mailbox rejected"},
	}

	status := BuildStatus("run-1", results, outcomes)

	assert.Equal(t, 1, status.InvitedCount, "failed sends are not counted as invited")
	assert.Equal(t, []string{"~Bad_Profile1"}, status.Errors["ProfileNotFound"])
	assert.Equal(t, []string{"carol@y.com"}, status.AlreadyInvited[cc.InvitedGroupID])
	assert.Equal(t, []string{"frank@q.com"}, status.AlreadyMember[cc.MemberGroupID])
	assert.Equal(t, []string{"eve@w.com"}, status.FailedDeliveries)
}

func TestBuildStatusGroupsErrorsByKind(t *testing.T) {
	results := []ClassificationResult{
		{Line: InviteeLine{RawIdentifier: "~A1"}, Identity: ResolvedIdentity{Failure: FailureProfileNotFound}, Outcome: OutcomeError},
		{Line: InviteeLine{RawIdentifier: "~B1"}, Identity: ResolvedIdentity{Failure: FailureProfileNotFound}, Outcome: OutcomeError},
		{Line: InviteeLine{RawIdentifier: "~C1"}, Identity: ResolvedIdentity{Failure: FailureProfileHasNoEmail}, Outcome: OutcomeError},
	}

	status := BuildStatus("run-1", results, nil)

	assert.Equal(t, []string{"~A1", "~B1"}, status.Errors["ProfileNotFound"])
	assert.Equal(t, []string{"~C1"}, status.Errors["ProfileHasNoEmail"])
}

func TestReporterPublishesBothSinks(t *testing.T) {
	records := &fakeRecords{}
	sender := &fakeSender{}
	r := NewReporter(records, sender)
	cc := testContext()

	status := &RecruitmentStatus{RunID: "run-1", InvitedCount: 3}
	r.Publish(context.Background(), status, cc)

	assert.Equal(t, "rec-1", status.RecordID)
	require.Len(t, records.parents, 1)
	assert.Equal(t, "request-42", records.parents[0])

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "chair@venue.example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].TextBody, "Newly invited: 3")
	assert.Contains(t, sender.sent[0].TextBody, "record rec-1")
}

func TestReporterRecordFailureDoesNotSuppressNotification(t *testing.T) {
	records := &fakeRecords{err: errors.New("record store down")}
	sender := &fakeSender{}
	r := NewReporter(records, sender)

	status := &RecruitmentStatus{RunID: "run-1"}
	r.Publish(context.Background(), status, testContext())

	assert.Empty(t, status.RecordID)
	assert.Len(t, sender.sent, 1, "notification must still be attempted")
}

func TestReporterNoChairsNoNotification(t *testing.T) {
	records := &fakeRecords{}
	sender := &fakeSender{}
	r := NewReporter(records, sender)

	cc := testContext()
	cc.ChairEmails = nil
	r.Publish(context.Background(), &RecruitmentStatus{RunID: "run-1"}, cc)

	assert.Empty(t, sender.sent)
}
