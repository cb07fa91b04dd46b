package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_cycles_total",
		Help: "Completed chase cycles.",
	})
	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chaser_cycle_duration_seconds",
		Help:    "Duration of a full chase cycle.",
		Buckets: prometheus.DefBuckets,
	})
	casesChasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_cases_chased_total",
		Help: "Cases run through the chase workflow.",
	})
	caseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_case_failures_total",
		Help: "Cases whose chase workflow returned an error.",
	})
	escalationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_escalations_total",
		Help: "Cases escalated to an advisor during a cycle.",
	})
	factFindChasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_fact_find_chases_total",
		Help: "Fact-find document requests sent.",
	})
	remindersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chaser_post_advice_reminders_total",
		Help: "Post-advice reminders sent.",
	})
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaser_document_verifications_total",
		Help: "Standalone document verifications, by outcome.",
	}, []string{"outcome"})
)
