// Package metrics provides observability for the admissions workflows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks submission outcomes, status lookups, and admin mutations.
type Metrics struct {
	SubmissionsTotal  *prometheus.CounterVec
	LookupsTotal      *prometheus.CounterVec
	AdminActionsTotal *prometheus.CounterVec
}

// New registers the portal metrics with the given registerer. Tests pass a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admissions_submissions_total",
			Help: "Submission attempts by outcome (accepted, duplicate, validation, upload_failed, insert_failed)",
		}, []string{"outcome"}),
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admissions_lookups_total",
			Help: "Status lookups by outcome (found, not_found)",
		}, []string{"outcome"}),
		AdminActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admissions_admin_actions_total",
			Help: "Admin mutations by action (update, delete)",
		}, []string{"action"}),
	}
}
