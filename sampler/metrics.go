package sampler

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Override kinds recorded by Metrics.
const (
	KindFixed    = "fixed"
	KindNarrowed = "narrowed"
)

// Metrics counts sampler draws. A nil *Metrics records nothing.
type Metrics struct {
	accountTypes *prometheus.CounterVec
	overrideHits *prometheus.CounterVec
	unknownTypes prometheus.Counter
}

// NewMetrics creates the sampler counters and registers them with reg.
// A nil reg leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		accountTypes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accountgen",
			Subsystem: "sampler",
			Name:      "account_types_total",
			Help:      "Account types drawn by weighted sampling.",
		}, []string{"account_type"}),
		overrideHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accountgen",
			Subsystem: "sampler",
			Name:      "override_hits_total",
			Help:      "Modifier draws resolved through a persona override.",
		}, []string{"account_type", "kind"}),
		unknownTypes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "accountgen",
			Subsystem: "sampler",
			Name:      "unknown_account_types_total",
			Help:      "Modifier requests for account types missing from the taxonomy.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.accountTypes, m.overrideHits, m.unknownTypes)
	}
	return m
}

func (m *Metrics) observeAccountType(name string) {
	if m == nil {
		return
	}
	m.accountTypes.WithLabelValues(name).Inc()
}

func (m *Metrics) observeOverride(accountType, kind string) {
	if m == nil {
		return
	}
	m.overrideHits.WithLabelValues(accountType, kind).Inc()
}

func (m *Metrics) observeUnknownType() {
	if m == nil {
		return
	}
	m.unknownTypes.Inc()
}
