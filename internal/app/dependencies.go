package app

import (
	"database/sql"

	"github.com/akademos/schedulebot/internal/config"
	"github.com/akademos/schedulebot/internal/event_bus"
	"github.com/akademos/schedulebot/pkg/bot"
	"github.com/akademos/schedulebot/pkg/event"
	"github.com/akademos/schedulebot/pkg/platform"
	"github.com/akademos/schedulebot/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus            *event_bus.Bus
	EventRepo      event.Repository
	PlatformClient platform.Client

	ExamHandler        *schedule.Handler
	ReplacementHandler *schedule.Handler

	Dispatcher     *bot.Dispatcher
	WebhookHandler *bot.WebhookHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewBus()
	registerAuditLog(deps.Bus)

	deps.EventRepo = event.NewEventRepo(db)
	deps.PlatformClient = platform.NewClient(cfg.Platform)

	deps.ExamHandler = schedule.NewHandler(schedule.Exam, deps.EventRepo, deps.PlatformClient, deps.Bus)
	deps.ReplacementHandler = schedule.NewHandler(schedule.Replacement, deps.EventRepo, deps.PlatformClient, deps.Bus)

	deps.Dispatcher = bot.NewDispatcher(deps.PlatformClient, mainMenu(), deps.ExamHandler, deps.ReplacementHandler)
	deps.WebhookHandler = bot.NewWebhookHandler(deps.Dispatcher)

	return deps
}

func mainMenu() []platform.Message {
	return []platform.Message{platform.Text{
		Text: "What would you like to manage?\n!exam_view - exams\n!replacement_view - class replacements",
	}}
}

// registerAuditLog writes one log line per event mutation.
func registerAuditLog(bus *event_bus.Bus) {
	logChange := func(action string) func(event_bus.Notification) error {
		return func(n event_bus.Notification) error {
			change, ok := n.Data.(event_bus.EventChange)
			if !ok {
				return nil
			}
			log.Infof("audit: %s %s %q (%s) by user %s", action, change.Category, change.Name, change.ID, change.CreatedBy)
			return nil
		}
	}
	bus.Subscribe(event_bus.EventCreated, logChange("created"))
	bus.Subscribe(event_bus.EventUpdated, logChange("updated"))
	bus.Subscribe(event_bus.EventDeleted, logChange("deleted"))
}
