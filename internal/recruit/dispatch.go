package recruit

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/openvenue/recruiter/internal/channel"
	"github.com/openvenue/recruiter/internal/pkg/logger"
)

// Candidate is one eligible invitee headed for dispatch.
type Candidate struct {
	Email       string
	DisplayName string
}

// Dispatcher fans personalized invitation sends out across a bounded
// worker pool. Each send is independent; one failure never blocks or
// fails another recipient.
type Dispatcher struct {
	sender   channel.Sender
	renderer *TemplateRenderer
	workers  int
}

// NewDispatcher creates a dispatcher with the given pool size
// (default 8). The external channel has its own rate limits, so the
// pool must stay bounded.
func NewDispatcher(sender channel.Sender, renderer *TemplateRenderer, workers int) *Dispatcher {
	if workers <= 0 {
		workers = 8
	}
	return &Dispatcher{sender: sender, renderer: renderer, workers: workers}
}

// Dispatch sends one invitation per candidate and returns an outcome
// per candidate, index-aligned with the input. Cancelling ctx stops
// submitting new work, but sends already handed to a worker run to
// completion and record their outcome: a recipient who got the email
// while the dispatcher thinks otherwise is worse than a slow batch.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []Candidate, cc CommitteeContext, runID string) []DispatchOutcome {
	outcomes := make([]DispatchOutcome, len(candidates))
	if len(candidates) == 0 {
		return outcomes
	}

	var sent, failed int64

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = d.sendOne(ctx, candidates[i], cc, runID)
				if outcomes[i].Delivered {
					atomic.AddInt64(&sent, 1)
				} else {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

submit:
	for i := 0; i < len(candidates); i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for ; i < len(candidates); i++ {
				outcomes[i] = DispatchOutcome{
					Email: candidates[i].Email,
					Err:   "dispatch canceled before send",
				}
				atomic.AddInt64(&failed, 1)
			}
			break submit
		}
	}
	close(jobs)
	wg.Wait()

	logger.Info("dispatch complete",
		"run_id", runID,
		"sent", atomic.LoadInt64(&sent),
		"failed", atomic.LoadInt64(&failed))

	return outcomes
}

func (d *Dispatcher) sendOne(ctx context.Context, c Candidate, cc CommitteeContext, runID string) DispatchOutcome {
	token := InviteToken(cc.SecretSeed, c.Email)
	inviteURL := InvitationURL(cc.InviteBaseURL, cc.ResponseEndpointID, c.Email, token)

	outcome := DispatchOutcome{Email: c.Email, Token: token}

	subject, body, err := d.renderer.RenderInvitation(cc.SubjectTemplate, cc.BodyTemplate, c.DisplayName, inviteURL)
	if err != nil {
		logger.Error("invitation render failed", "recipient", c.Email, "err", err.Error())
		outcome.Err = err.Error()
		return outcome
	}

	// A send in flight must finish and record even if the batch is
	// canceled mid-way.
	result, err := d.sender.Send(context.WithoutCancel(ctx), &channel.Message{
		To:        c.Email,
		FromName:  cc.FromName,
		FromEmail: cc.FromEmail,
		Subject:   subject,
		TextBody:  body,
		RunID:     runID,
	})
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}
	if !result.Success {
		if result.Error != nil {
			outcome.Err = result.Error.Error()
		} else {
			outcome.Err = "delivery failed"
		}
		return outcome
	}

	outcome.Delivered = true
	return outcome
}
