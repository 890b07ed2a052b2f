package alerts

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMetrics_Lifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	mt := NewMetrics(reg)
	m, _ := newTestManager(t, noAnimation(), WithMetrics(mt))

	p, _ := m.QuestionText("?")
	m.Form(FormRequest{Fields: []FormField{{Name: "x", Required: true}}})
	assert.Equal(t, 2.0, testutil.ToFloat64(mt.activeDialogs))

	send(m, press(tea.KeyEnter)) // invalid form
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.validationFailures))

	m.Close(p.ID(), OutcomeConfirmed)
	m.Notify(NotificationRequest{Type: TypeError, Message: "x"})
	m.CloseAll()

	assert.Equal(t, 1.0, testutil.ToFloat64(mt.dialogsShown.WithLabelValues("alert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.dialogsShown.WithLabelValues("form")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.dialogsResolved.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.dialogsResolved.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.notificationsShown.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.notificationsClosed))
	assert.Zero(t, testutil.ToFloat64(mt.activeDialogs))
	assert.Zero(t, testutil.ToFloat64(mt.activeNotifications))

	n, err := testutil.GatherAndCount(reg, "lucid_alerts_dialog_open_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var mt *Metrics
	assert.NotPanics(t, func() {
		mt.dialogShown(kindAlert, 1)
		mt.dialogDismissed(0)
		mt.dialogResolved(OutcomeCancelled, 0)
		mt.validationFailed()
		mt.notificationShown(TypeInfo, 1)
		mt.notificationDismissed(0)
		mt.notificationRemoved()
	})
}

func TestTracing_SpanPerWidget(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	m, _ := newTestManager(t, noAnimation(), WithTracerProvider(tp))

	p, _ := m.AlertText("traced")
	assert.Empty(t, rec.Ended())
	m.Close(p.ID(), OutcomeCancelled)
	id, _ := m.Notify(NotificationRequest{Message: "x", Duration: Duration(0)})
	m.CloseNotification(id)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spanDialog, spans[0].Name())
	assert.Equal(t, spanNotification, spans[1].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("lucid.outcome", "cancelled"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("lucid.kind", "alert"))
	assert.Contains(t, spans[1].Attributes(), attribute.String("lucid.type", "info"))
}
