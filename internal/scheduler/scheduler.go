// Package scheduler drives the autonomous chase cycle: the daily tick,
// per-case workflow runs, fact-find chasing, post-advice reminders, and
// standalone document verification. A cycle can be triggered over HTTP or
// run on an interval.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kgnguhan/agentic-chaser/internal/config"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
	"github.com/kgnguhan/agentic-chaser/internal/workflow"
	"github.com/kgnguhan/agentic-chaser/pkg/lifecycle"
)

// ErrCycleInProgress is returned when a cycle is requested while another
// is still running.
var ErrCycleInProgress = errors.New("chase cycle already in progress")

// CycleReport summarizes one chase cycle.
type CycleReport struct {
	StartedAt           time.Time      `json:"started_at"`
	CompletedAt         time.Time      `json:"completed_at"`
	DurationSeconds     float64        `json:"duration_seconds"`
	CasesTicked         int            `json:"cases_ticked"`
	ItemsTicked         int            `json:"post_advice_items_ticked"`
	CasesChased         int            `json:"cases_chased"`
	CasesEscalated      int            `json:"cases_escalated"`
	CaseFailures        int            `json:"case_failures"`
	FactFindChases      int            `json:"fact_find_chases"`
	PostAdviceReminders int            `json:"post_advice_reminders"`
	DocumentsVerified   int            `json:"documents_verified"`
	DocumentsRejected   int            `json:"documents_rejected"`
	Actions             map[string]int `json:"actions"`
}

// System runs chase cycles.
type System interface {
	Handler() *Handler

	// RunCycle executes one full chase cycle. Only one cycle runs at a
	// time; concurrent requests get ErrCycleInProgress.
	RunCycle(ctx context.Context) (*CycleReport, error)

	// LastReport returns the most recent cycle report, or nil before the
	// first cycle.
	LastReport() *CycleReport

	// Start launches the interval loop when the scheduler is enabled.
	Start(lc *lifecycle.Coordinator)
}

type scheduler struct {
	cfg        config.SchedulerConfig
	rt         *workflow.Runtime
	factfind   factfind.System
	postadvice postadvice.System
	logger     *slog.Logger

	running  sync.Mutex
	reportMu sync.RWMutex
	last     *CycleReport
}

func New(
	cfg config.SchedulerConfig,
	rt *workflow.Runtime,
	factFind factfind.System,
	postAdvice postadvice.System,
	logger *slog.Logger,
) System {
	return &scheduler{
		cfg:        cfg,
		rt:         rt,
		factfind:   factFind,
		postadvice: postAdvice,
		logger:     logger.With("system", "scheduler"),
	}
}

func (s *scheduler) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *scheduler) LastReport() *CycleReport {
	s.reportMu.RLock()
	defer s.reportMu.RUnlock()
	return s.last
}

func (s *scheduler) Start(lc *lifecycle.Coordinator) {
	if !s.cfg.Enabled {
		s.logger.Info("interval scheduling disabled, cycles run on demand")
		return
	}

	done := make(chan struct{})
	go s.loop(lc.Context(), done)

	lc.OnShutdown(func() {
		<-done
	})

	s.logger.Info("interval scheduling started", "interval", s.cfg.Interval)
}

func (s *scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.cfg.IntervalDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunCycle(ctx); err != nil {
				s.logger.Error("scheduled cycle failed", "error", err)
			}
		}
	}
}

func (s *scheduler) RunCycle(ctx context.Context) (*CycleReport, error) {
	if !s.running.TryLock() {
		return nil, ErrCycleInProgress
	}
	defer s.running.Unlock()

	report := &CycleReport{
		StartedAt: time.Now().UTC(),
		Actions:   make(map[string]int),
	}

	s.logger.Info("chase cycle started")

	if err := s.tick(ctx, report); err != nil {
		return nil, err
	}

	s.chaseCases(ctx, report)
	s.chaseFactFind(ctx, report)
	s.sendReminders(ctx, report)
	s.verifyDocuments(ctx, report)

	report.CompletedAt = time.Now().UTC()
	report.DurationSeconds = report.CompletedAt.Sub(report.StartedAt).Seconds()

	cyclesTotal.Inc()
	cycleDuration.Observe(report.DurationSeconds)

	s.reportMu.Lock()
	s.last = report
	s.reportMu.Unlock()

	s.logger.Info("chase cycle complete",
		"duration_seconds", report.DurationSeconds,
		"cases_chased", report.CasesChased,
		"cases_escalated", report.CasesEscalated,
		"case_failures", report.CaseFailures,
		"fact_find_chases", report.FactFindChases,
		"post_advice_reminders", report.PostAdviceReminders,
		"documents_verified", report.DocumentsVerified,
		"documents_rejected", report.DocumentsRejected,
	)

	return report, nil
}

// tick advances every open case and incomplete post-advice item by one day.
// A tick failure aborts the cycle: chasing against stale day counters would
// skew every downstream decision.
func (s *scheduler) tick(ctx context.Context, report *CycleReport) error {
	ticked, err := s.rt.Cases.Tick(ctx)
	if err != nil {
		return err
	}
	report.CasesTicked = ticked

	items, err := s.postadvice.Tick(ctx)
	if err != nil {
		return err
	}
	report.ItemsTicked = items

	return nil
}

// chaseCases runs the chase workflow over every active case that is not
// already waiting on an advisor. Failures are isolated per case.
func (s *scheduler) chaseCases(ctx context.Context, report *CycleReport) {
	active, err := s.rt.Cases.Active(ctx)
	if err != nil {
		s.logger.Error("loading active cases failed", "error", err)
		report.CaseFailures++
		return
	}

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for _, c := range active {
		if c.NeedsIntervention {
			continue
		}

		g.Go(func() error {
			result, err := workflow.Execute(gctx, s.rt, c.ID)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				s.logger.Error("case chase failed", "case_id", c.ID, "error", err)
				report.CaseFailures++
				caseFailuresTotal.Inc()
				return nil
			}

			report.CasesChased++
			report.Actions[string(result.Action)]++
			casesChasedTotal.Inc()

			if result.Escalated {
				report.CasesEscalated++
				escalationsTotal.Inc()
			}

			return nil
		})
	}

	g.Wait()
}

func (s *scheduler) chaseFactFind(ctx context.Context, report *CycleReport) {
	entries, err := s.factfind.ChaseQueue(ctx, s.cfg.QueueLimit)
	if err != nil {
		s.logger.Error("loading fact-find queue failed", "error", err)
		return
	}

	for _, entry := range entries {
		if _, err := s.rt.Messaging.RequestFactFindDocuments(ctx, entry); err != nil {
			s.logger.Error("fact-find chase failed", "client_id", entry.ClientID, "error", err)
			continue
		}

		report.FactFindChases++
		factFindChasesTotal.Inc()
	}
}

func (s *scheduler) sendReminders(ctx context.Context, report *CycleReport) {
	items, err := s.postadvice.Outstanding(ctx, s.cfg.QueueLimit)
	if err != nil {
		s.logger.Error("loading outstanding post-advice items failed", "error", err)
		return
	}

	for _, item := range items {
		if _, err := s.rt.Messaging.SendPostAdviceReminder(ctx, item); err != nil {
			s.logger.Error("post-advice reminder failed", "item_id", item.ID, "error", err)
			continue
		}

		report.PostAdviceReminders++
		remindersTotal.Inc()
	}
}

// verifyDocuments processes uploads that are not linked to a case. Rejected
// documents trigger a resubmission request to the client.
func (s *scheduler) verifyDocuments(ctx context.Context, report *CycleReport) {
	docs, err := s.rt.Documents.AwaitingVerification(ctx, s.cfg.QueueLimit)
	if err != nil {
		s.logger.Error("loading unverified documents failed", "error", err)
		return
	}

	for _, doc := range docs {
		processed, err := s.rt.Documents.Process(ctx, doc.ID)
		if err != nil {
			if errors.Is(err, documents.ErrAlreadyProcessed) {
				continue
			}
			s.logger.Error("document verification failed", "document_id", doc.ID, "error", err)
			continue
		}

		if processed.Verified() {
			report.DocumentsVerified++
			verificationsTotal.WithLabelValues("verified").Inc()
			continue
		}

		report.DocumentsRejected++
		verificationsTotal.WithLabelValues("rejected").Inc()

		if _, err := s.rt.Messaging.RequestResubmission(ctx, processed.ClientID, nil, *processed); err != nil {
			s.logger.Error("resubmission request failed",
				"document_id", processed.ID,
				"client_id", processed.ClientID,
				"error", err,
			)
		}
	}
}
