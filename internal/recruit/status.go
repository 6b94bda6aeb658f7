package recruit

import (
	"context"
	"fmt"
	"strings"

	"github.com/openvenue/recruiter/internal/channel"
	"github.com/openvenue/recruiter/internal/pkg/logger"
	"github.com/openvenue/recruiter/internal/record"
)

// BuildStatus merges classification results and dispatch outcomes into
// the batch report. Every parsed line lands in exactly one bucket, and
// bucket lists follow original input order.
func BuildStatus(runID string, results []ClassificationResult, outcomes []DispatchOutcome) *RecruitmentStatus {
	status := &RecruitmentStatus{
		RunID:          runID,
		AlreadyInvited: make(map[string][]string),
		AlreadyMember:  make(map[string][]string),
		Errors:         make(map[string][]string),
	}

	for _, res := range results {
		switch res.Outcome {
		case OutcomeError:
			kind := string(res.Identity.Failure)
			status.Errors[kind] = append(status.Errors[kind], res.Line.RawIdentifier)
		case OutcomeAlreadyInvited:
			status.AlreadyInvited[res.GroupID] = append(status.AlreadyInvited[res.GroupID], res.Identity.PrimaryEmail())
		case OutcomeAlreadyMember:
			status.AlreadyMember[res.GroupID] = append(status.AlreadyMember[res.GroupID], res.Identity.PrimaryEmail())
		}
	}

	for _, out := range outcomes {
		if out.Delivered {
			status.InvitedCount++
		} else {
			status.FailedDeliveries = append(status.FailedDeliveries, out.Email)
		}
	}

	return status
}

// Reporter publishes a finished status to its two sinks: a durable
// record under the originating request, and a direct notification to
// the chairs. The two writes are independent best-effort side effects;
// the invitations are already out, so neither failure is fatal.
type Reporter struct {
	records  record.Store
	notifier channel.Sender
}

// NewReporter creates a reporter over the given sinks.
func NewReporter(records record.Store, notifier channel.Sender) *Reporter {
	return &Reporter{records: records, notifier: notifier}
}

// Publish writes the durable record, then notifies the chairs. The
// record id is attached to the status when the write succeeds.
func (r *Reporter) Publish(ctx context.Context, status *RecruitmentStatus, cc CommitteeContext) {
	recordID, err := r.records.Publish(ctx, cc.RecordParentID, status)
	if err != nil {
		logger.Error("recruitment record publish failed", "run_id", status.RunID, "err", err.Error())
	} else {
		status.RecordID = recordID
	}

	r.notifyChairs(ctx, status, cc)
}

func (r *Reporter) notifyChairs(ctx context.Context, status *RecruitmentStatus, cc CommitteeContext) {
	if len(cc.ChairEmails) == 0 {
		return
	}

	body := summarize(status)
	for _, chair := range cc.ChairEmails {
		result, err := r.notifier.Send(ctx, &channel.Message{
			To:        chair,
			FromName:  cc.FromName,
			FromEmail: cc.FromEmail,
			Subject:   "Recruitment dispatch complete",
			TextBody:  body,
			RunID:     status.RunID,
		})
		if err != nil || result == nil || !result.Success {
			logger.Warn("chair notification failed", "recipient", chair, "run_id", status.RunID)
		}
	}
}

func summarize(status *RecruitmentStatus) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recruitment dispatch finished.\n\n")
	fmt.Fprintf(&b, "Newly invited: %d\n", status.InvitedCount)

	alreadyInvited := 0
	for _, emails := range status.AlreadyInvited {
		alreadyInvited += len(emails)
	}
	fmt.Fprintf(&b, "Already invited: %d\n", alreadyInvited)

	alreadyMember := 0
	for _, emails := range status.AlreadyMember {
		alreadyMember += len(emails)
	}
	fmt.Fprintf(&b, "Already members: %d\n", alreadyMember)

	errorCount := 0
	for _, ids := range status.Errors {
		errorCount += len(ids)
	}
	fmt.Fprintf(&b, "Errors: %d\n", errorCount)

	if len(status.FailedDeliveries) > 0 {
		fmt.Fprintf(&b, "Failed deliveries (retry manually): %d\n", len(status.FailedDeliveries))
	}
	if status.RecordID != "" {
		fmt.Fprintf(&b, "\nFull report: record %s\n", status.RecordID)
	}

	return b.String()
}
