package recruit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openvenue/recruiter/internal/channel"
	"github.com/openvenue/recruiter/internal/membership"
	"github.com/openvenue/recruiter/internal/pkg/logger"
	"github.com/openvenue/recruiter/internal/record"
)

// ErrNoInvitees is returned when the raw invitee text contains nothing
// to process. It is the only batch-fatal condition: everything past
// parsing degrades to per-entry outcomes instead.
var ErrNoInvitees = errors.New("recruit: no invitees in input")

// classifyParallelism bounds the resolve/classify fan-out. Both lookups
// are read-only and idempotent, so entries are safe to run in parallel.
const classifyParallelism = 8

// Engine is the recruitment invitation dispatch engine.
type Engine struct {
	resolver   *Resolver
	classifier *Classifier
	dispatcher *Dispatcher
	reporter   *Reporter
}

// NewEngine wires the engine over its four collaborators. The sender is
// used both for invitations and for the chair notification.
func NewEngine(dir DirectoryClient, store membership.Store, sender channel.Sender, records record.Store, workers int) *Engine {
	return &Engine{
		resolver:   NewResolver(dir),
		classifier: NewClassifier(store),
		dispatcher: NewDispatcher(sender, NewTemplateRenderer(), workers),
		reporter:   NewReporter(records, sender),
	}
}

// DispatchRecruitment runs one full batch: parse, resolve and classify
// every entry, dispatch invitations to the eligible candidates, then
// aggregate and publish the report. The returned status is complete
// even when the report publication sinks fail.
func (e *Engine) DispatchRecruitment(ctx context.Context, rawText string, cc CommitteeContext) (*RecruitmentStatus, error) {
	lines := ParseInvitees(rawText)
	if len(lines) == 0 {
		return nil, ErrNoInvitees
	}

	runID := uuid.New().String()
	logger.Info("recruitment dispatch started", "run_id", runID, "entries", len(lines))

	// Per-entry classification is a pure function of (line, snapshot);
	// results land by index so report order follows input order.
	results := make([]ClassificationResult, len(lines))
	g := new(errgroup.Group)
	g.SetLimit(classifyParallelism)
	for i := range lines {
		i := i
		g.Go(func() error {
			results[i] = e.classifyOne(ctx, lines[i], cc)
			return nil
		})
	}
	_ = g.Wait()

	candidates := e.eligibleCandidates(results)
	outcomes := e.dispatcher.Dispatch(ctx, candidates, cc, runID)

	status := BuildStatus(runID, results, outcomes)

	// Invitations may already be out, so the report publishes even if
	// the caller canceled mid-batch.
	e.reporter.Publish(context.WithoutCancel(ctx), status, cc)

	logger.Info("recruitment dispatch finished",
		"run_id", runID,
		"invited", status.InvitedCount,
		"failed_deliveries", len(status.FailedDeliveries))

	return status, nil
}

func (e *Engine) classifyOne(ctx context.Context, line InviteeLine, cc CommitteeContext) ClassificationResult {
	result := ClassificationResult{Line: line}

	result.Identity = e.resolver.Resolve(ctx, line)
	if result.Identity.Failed() {
		result.Outcome = OutcomeError
		return result
	}

	result.Outcome, result.GroupID = e.classifier.Classify(ctx, result.Identity, cc)
	return result
}

// eligibleCandidates extracts the dispatch set, deduplicating repeated
// emails while preserving first-seen order. The first occurrence's
// display name wins; profile-resolved entries without one fall back to
// the directory name.
func (e *Engine) eligibleCandidates(results []ClassificationResult) []Candidate {
	seen := make(map[string]bool)
	var candidates []Candidate

	for _, res := range results {
		if res.Outcome != OutcomeEligible {
			continue
		}
		email := res.Identity.PrimaryEmail()
		if seen[email] {
			continue
		}
		seen[email] = true

		name := res.Line.DisplayName
		if name == "" {
			name = res.Identity.FullName
		}
		candidates = append(candidates, Candidate{Email: email, DisplayName: name})
	}

	return candidates
}
