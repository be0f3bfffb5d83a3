package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ThrottleSignalsTotal          *prometheus.CounterVec
	ThrottleDuplicateSignalsTotal *prometheus.CounterVec
	ThrottleFailuresTotal         prometheus.Counter
	ThrottleCooldownsTotal        prometheus.Counter
	WarmupAttemptsTotal           prometheus.Counter
	WarmupRefusalsTotal           *prometheus.CounterVec
	EmptyResponseAttemptsTotal    prometheus.Counter
	TrackedBackoffKeys            prometheus.Gauge
	TrackedFailureAccounts        prometheus.Gauge
	CleanupEntriesDeletedTotal    *prometheus.CounterVec
	CleanupRunsTotal              *prometheus.CounterVec
	CleanupDurationSeconds        prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ThrottleSignalsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pacer_throttle_signals_recorded_total",
			Help: "Total number of rate-limit signals recorded, by quota class",
		}, []string{"quota_class"}),
		ThrottleDuplicateSignalsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pacer_throttle_duplicate_signals_total",
			Help: "Total number of rate-limit signals collapsed into an existing incident, by quota class",
		}, []string{"quota_class"}),
		ThrottleFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pacer_throttle_failures_recorded_total",
			Help: "Total number of non-rate-limit failures recorded",
		}),
		ThrottleCooldownsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pacer_throttle_cooldowns_total",
			Help: "Total number of cooldown decisions issued",
		}),
		WarmupAttemptsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pacer_warmup_attempts_total",
			Help: "Total number of warm-up attempts granted",
		}),
		WarmupRefusalsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pacer_warmup_refusals_total",
			Help: "Total number of warm-up attempts refused, by reason",
		}, []string{"reason"}),
		EmptyResponseAttemptsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pacer_empty_response_attempts_total",
			Help: "Total number of empty-response retry attempts recorded",
		}),
		TrackedBackoffKeys: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pacer_throttle_tracked_backoff_keys",
			Help: "Current number of account+quota-class backoff entries",
		}),
		TrackedFailureAccounts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pacer_throttle_tracked_failure_accounts",
			Help: "Current number of accounts with failure records",
		}),
		CleanupEntriesDeletedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pacer_throttle_cleanup_entries_deleted_total",
			Help: "Total number of expired entries removed by the cleanup worker, by store",
		}, []string{"store"}),
		CleanupRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pacer_throttle_cleanup_runs_total",
			Help: "Total number of cleanup runs",
		}, []string{"status"}),
		CleanupDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name: "pacer_throttle_cleanup_duration_seconds",
			Help: "Duration of cleanup runs in seconds",
		}),
	}
}

func (m *Metrics) IncrementSignals(quotaClass string) {
	m.ThrottleSignalsTotal.WithLabelValues(quotaClass).Inc()
}

func (m *Metrics) IncrementDuplicateSignals(quotaClass string) {
	m.ThrottleDuplicateSignalsTotal.WithLabelValues(quotaClass).Inc()
}

func (m *Metrics) IncrementFailures() {
	m.ThrottleFailuresTotal.Inc()
}

func (m *Metrics) IncrementCooldowns() {
	m.ThrottleCooldownsTotal.Inc()
}

func (m *Metrics) IncrementWarmupAttempts() {
	m.WarmupAttemptsTotal.Inc()
}

func (m *Metrics) IncrementWarmupRefusals(reason string) {
	m.WarmupRefusalsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementEmptyResponseAttempts() {
	m.EmptyResponseAttemptsTotal.Inc()
}

func (m *Metrics) SetTrackedBackoffKeys(count int) {
	m.TrackedBackoffKeys.Set(float64(count))
}

func (m *Metrics) SetTrackedFailureAccounts(count int) {
	m.TrackedFailureAccounts.Set(float64(count))
}

func (m *Metrics) IncrementCleanupDeleted(store string, count int) {
	m.CleanupEntriesDeletedTotal.WithLabelValues(store).Add(float64(count))
}

func (m *Metrics) IncrementCleanupRuns(status string) {
	m.CleanupRunsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveCleanupDuration(durationSeconds float64) {
	m.CleanupDurationSeconds.Observe(durationSeconds)
}
