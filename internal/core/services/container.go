package services

import (
	"time"

	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/platform/config"
)

// NewServiceContainer wires every service from the repository provider and configuration.
// publisher may be nil when the process does not dispatch reminders.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, publisher portssvc.ReminderPublisher) *portssvc.ServiceContainer {
	clock := func() time.Time { return time.Now().In(cfg.Location) }
	snapshots := NewSnapshotService(repos.SnapshotRepo,
		WithMaterializationHorizon(max(cfg.TimelineHorizonDays, cfg.AlertWindowDays)))

	container := &portssvc.ServiceContainer{
		Snapshot: snapshots,
		Insights: NewInsightsService(snapshots,
			WithDefaultHorizonDays(cfg.TimelineHorizonDays),
			WithDefaultAlertWindowDays(cfg.AlertWindowDays),
			WithReminderLead(cfg.ReminderLead),
			WithDashboardCache(cfg.ViewCacheSize, cfg.ViewCacheTTL),
			WithInsightsClock(clock)),
	}
	if publisher != nil {
		container.Reminders = NewReminderService(snapshots, repos.ReminderRepo, publisher, cfg.ReminderLead)
	}
	return container
}
