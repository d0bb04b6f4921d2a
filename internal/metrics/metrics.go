package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Simulation Metrics
var (
	SimTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimTicksTotal,
			Help: HelpTextSimTicksTotal,
		},
	)

	SimTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSimTickDuration,
			Help:    HelpTextSimTickDuration,
			Buckets: TickDurationBuckets,
		},
	)

	ProductionRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameProductionRate,
			Help: HelpTextProductionRate,
		},
	)

	PlantsAlive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlantsAlive,
			Help: HelpTextPlantsAlive,
		},
	)
)

// Business Metrics
var (
	HarvestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsTotal,
			Help: HelpTextHarvestsTotal,
		},
		[]string{LabelStrain},
	)

	GramsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGramsHarvested,
			Help: HelpTextGramsHarvested,
		},
	)

	CashEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCashEarned,
			Help: HelpTextCashEarned,
		},
	)

	CashSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCashSpent,
			Help: HelpTextCashSpent,
		},
	)

	OffersSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersSpawned,
			Help: HelpTextOffersSpawned,
		},
	)

	OffersAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersAccepted,
			Help: HelpTextOffersAccepted,
		},
	)

	OffersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersExpired,
			Help: HelpTextOffersExpired,
		},
	)

	PestInfections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePestInfections,
			Help: HelpTextPestInfections,
		},
		[]string{LabelPest},
	)

	PrestigeResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestigeResets,
			Help: HelpTextPrestigeResets,
		},
	)

	SnapshotSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSaves,
			Help: HelpTextSnapshotSaves,
		},
	)

	SnapshotSaveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSaveErrors,
			Help: HelpTextSnapshotSaveErrors,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)
