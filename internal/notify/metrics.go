package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chime_notifications_total",
		Help: "Notification requests dispatched, by overall result.",
	}, []string{"result"})

	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chime_actions_total",
		Help: "Individual notification actions attempted, by type and result.",
	}, []string{"type", "result"})
)

func recordNotification(success bool) {
	notificationsTotal.WithLabelValues(resultLabel(success)).Inc()
}

func recordAction(actionType ActionType, success bool) {
	actionsTotal.WithLabelValues(string(actionType), resultLabel(success)).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
