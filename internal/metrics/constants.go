package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Simulation metric names
const (
	MetricNameSimTicksTotal   = "sim_ticks_total"
	MetricNameSimTickDuration = "sim_tick_duration_seconds"
	MetricNameProductionRate  = "production_rate_grams_per_second"
	MetricNamePlantsAlive     = "plants_alive"
)

// Business metric names
const (
	MetricNameHarvestsTotal       = "harvests_total"
	MetricNameGramsHarvested      = "grams_harvested_total"
	MetricNameCashEarned          = "cash_earned_total"
	MetricNameCashSpent           = "cash_spent_total"
	MetricNameOffersSpawned       = "offers_spawned_total"
	MetricNameOffersAccepted      = "offers_accepted_total"
	MetricNameOffersExpired       = "offers_expired_total"
	MetricNamePestInfections      = "pest_infections_total"
	MetricNamePrestigeResets      = "prestige_resets_total"
	MetricNameSnapshotSaves       = "snapshot_saves_total"
	MetricNameSnapshotSaveErrors  = "snapshot_save_errors_total"
	MetricNameEventsPublished     = "events_published_total"
	MetricNameEventHandlerErrors  = "event_handler_errors_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Simulation metric help text
const (
	HelpTextSimTicksTotal   = "Total number of simulation ticks"
	HelpTextSimTickDuration = "Simulation tick duration in seconds"
	HelpTextProductionRate  = "Estimated farm output in grams per second"
	HelpTextPlantsAlive     = "Current number of living plants"
)

// Business metric help text
const (
	HelpTextHarvestsTotal      = "Total number of plants harvested"
	HelpTextGramsHarvested     = "Total grams harvested"
	HelpTextCashEarned         = "Total cash earned from sales"
	HelpTextCashSpent          = "Total cash spent in the shop"
	HelpTextOffersSpawned      = "Total number of market offers spawned"
	HelpTextOffersAccepted     = "Total number of market offers accepted"
	HelpTextOffersExpired      = "Total number of market offers that expired"
	HelpTextPestInfections     = "Total number of pest infections"
	HelpTextPrestigeResets     = "Total number of prestige resets"
	HelpTextSnapshotSaves      = "Total number of snapshot saves"
	HelpTextSnapshotSaveErrors = "Total number of failed snapshot saves"
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelStrain = "strain"
	LabelPest   = "pest"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickDurationBuckets covers the expected range of a simulation tick,
// from microseconds up to a stalled 250ms tick.
var TickDurationBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .25}
