package observability

import (
	"errors"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records dispatched commands as Prometheus series.
type Metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer. Collectors that are already
// registered are reused, so several consoles can share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	commands := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devconsole_commands_total",
			Help: "Total number of dispatched console commands",
		},
		[]string{"kind", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devconsole_command_duration_seconds",
			Help:    "Duration of console command dispatch",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"kind"},
	)

	var err error
	if commands, err = register(reg, commands); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	return &Metrics{commands: commands, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records one command event.
func (m *Metrics) Observe(e *domain.CommandEvent) {
	kind := e.Kind.String()
	m.commands.WithLabelValues(kind, e.Outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(e.Duration.Seconds())
}

// Hooks returns lifecycle hooks feeding m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{OnDispatch: m.Observe}
}
