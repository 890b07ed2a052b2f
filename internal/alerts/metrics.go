package alerts

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records dialog and notification lifecycle counters. A nil *Metrics
// records nothing.
type Metrics struct {
	dialogsShown        *prometheus.CounterVec
	dialogsResolved     *prometheus.CounterVec
	dialogDuration      prometheus.Histogram
	validationFailures  prometheus.Counter
	notificationsShown  *prometheus.CounterVec
	notificationsClosed prometheus.Counter
	activeDialogs       prometheus.Gauge
	activeNotifications prometheus.Gauge
}

// NewMetrics registers the alert metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	const ns, sub = "lucid", "alerts"

	return &Metrics{
		dialogsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "dialogs_shown_total",
			Help:      "Dialogs shown, by kind",
		}, []string{"kind"}),

		dialogsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "dialogs_resolved_total",
			Help:      "Dialog results settled, by outcome",
		}, []string{"outcome"}),

		dialogDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "dialog_open_seconds",
			Help:      "Time from showing a dialog to settling its result",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 300},
		}),

		validationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "form_validation_failures_total",
			Help:      "Form submissions rejected by validation",
		}),

		notificationsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "notifications_shown_total",
			Help:      "Notifications shown, by type",
		}, []string{"type"}),

		notificationsClosed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "notifications_closed_total",
			Help:      "Notifications removed after their dismissal",
		}),

		activeDialogs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "active_dialogs",
			Help:      "Dialogs currently in the active set",
		}),

		activeNotifications: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "active_notifications",
			Help:      "Notifications currently in the active set",
		}),
	}
}

func (m *Metrics) dialogShown(kind dialogKind, active int) {
	if m == nil {
		return
	}
	m.dialogsShown.WithLabelValues(string(kind)).Inc()
	m.activeDialogs.Set(float64(active))
}

func (m *Metrics) dialogDismissed(active int) {
	if m == nil {
		return
	}
	m.activeDialogs.Set(float64(active))
}

func (m *Metrics) dialogResolved(outcome Outcome, open time.Duration) {
	if m == nil {
		return
	}
	m.dialogsResolved.WithLabelValues(outcome.String()).Inc()
	m.dialogDuration.Observe(open.Seconds())
}

func (m *Metrics) validationFailed() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

func (m *Metrics) notificationShown(typ NotificationType, active int) {
	if m == nil {
		return
	}
	m.notificationsShown.WithLabelValues(string(typ)).Inc()
	m.activeNotifications.Set(float64(active))
}

func (m *Metrics) notificationDismissed(active int) {
	if m == nil {
		return
	}
	m.activeNotifications.Set(float64(active))
}

func (m *Metrics) notificationRemoved() {
	if m == nil {
		return
	}
	m.notificationsClosed.Inc()
}
