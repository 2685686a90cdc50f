package di

import (
	"bouncepro-reminder/internal/scheduler"
	"bouncepro-reminder/transport/http"
)

// Service bundles the two long-lived components main drives: the reminder
// scheduler and the operational HTTP surface.
type Service struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}
