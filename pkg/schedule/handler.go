package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akademos/schedulebot/internal/event_bus"
	"github.com/akademos/schedulebot/internal/utils"
	"github.com/akademos/schedulebot/pkg/carousel"
	"github.com/akademos/schedulebot/pkg/event"
	"github.com/akademos/schedulebot/pkg/platform"
	log "github.com/sirupsen/logrus"
)

const detailDateFormat = "02 January 2006"

// Handler serves the full command surface of one event category. It is
// stateless between invocations: every command re-fetches what it needs
// from the store.
type Handler struct {
	category Category
	repo     event.Repository
	profiles platform.ProfileProvider
	bus      *event_bus.Bus
	clock    utils.Clock
}

func NewHandler(category Category, repo event.Repository, profiles platform.ProfileProvider, bus *event_bus.Bus) *Handler {
	return &Handler{category, repo, profiles, bus, &utils.SystemClock{}}
}

// CanHandle reports whether the command belongs to this handler's category.
func (h *Handler) CanHandle(command string) bool {
	return strings.HasPrefix(command, h.category.prefix())
}

// Handle runs one command to completion and returns the reply messages.
// Every failure is converted to a user-facing text reply; nothing
// propagates to the dispatcher.
func (h *Handler) Handle(ctx context.Context, src platform.Source, command string, args []string) []platform.Message {
	messages, err := h.handle(ctx, src, command, args)
	if err != nil {
		return []platform.Message{platform.Text{Text: h.failureText(command, err)}}
	}
	return messages
}

func (h *Handler) failureText(command string, err error) string {
	var argErr ArgCountError
	var notFoundErr NotFoundError
	switch {
	case errors.As(err, &argErr):
		return "Arguments must be exactly " + argErr.Expected + "!"
	case errors.Is(err, ErrInvalidDate):
		return "Invalid date!"
	case errors.As(err, &notFoundErr):
		return notFoundErr.Noun + " not found!"
	case errors.Is(err, carousel.ErrPageOutOfBound):
		return "Page out of bound!"
	default:
		log.Errorf("command %s failed: %v", command, err)
		return "Request failed. Please try again later."
	}
}

func (h *Handler) handle(ctx context.Context, src platform.Source, command string, args []string) ([]platform.Message, error) {
	switch strings.TrimPrefix(command, h.category.prefix()) {
	case "view":
		return h.view(ctx, src, args)
	case "detail":
		return h.detail(ctx, args)
	case "add":
		return h.add(ctx, src, args)
	case "add_template":
		return h.addTemplate(), nil
	case "delete":
		return h.delete(ctx, src, args)
	case "delete_confirm":
		return h.deleteConfirm(ctx, args)
	case "edit":
		return h.edit(ctx, src, args)
	case "edit_template":
		return h.editTemplate(ctx, args)
	default:
		return []platform.Message{platform.Text{Text: "Unknown command. Send " + MainMenuCommand + " to open the main menu."}}, nil
	}
}

func (h *Handler) view(ctx context.Context, src platform.Source, args []string) ([]platform.Message, error) {
	if len(args) > 1 {
		return nil, ArgCountError{"0 or 1"}
	}
	page := 0
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, carousel.ErrPageOutOfBound
		}
		page = parsed
	}

	menu, err := h.viewMenu(ctx, src, page)
	if err != nil {
		return nil, err
	}
	return []platform.Message{menu}, nil
}

// viewMenu re-fetches the scoped events and assembles the carousel for
// the requested page.
func (h *Handler) viewMenu(ctx context.Context, src platform.Source, page int) (platform.Message, error) {
	events, err := h.repo.Find(ctx, h.scopeFilter(src))
	if err != nil {
		return nil, err
	}
	menu, err := carousel.AssembleMenu(events, page, h.clock.Now(), h.category.commands(), h.category.labels())
	if err != nil {
		return nil, err
	}
	return platform.CarouselMessage{Carousel: menu}, nil
}

func (h *Handler) detail(ctx context.Context, args []string) ([]platform.Message, error) {
	if len(args) != 1 {
		return nil, ArgCountError{"1"}
	}
	found, err := h.repo.FindByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, NotFoundError{h.category.Noun}
	}

	profile, err := h.profiles.GetUserProfile(ctx, found.CreatedBy)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("[%s Detail]\nName: %s\nDate: %s\nCreated By: %s\nCreated At: %s",
		h.category.Noun,
		found.Name,
		found.Date.Format(detailDateFormat),
		profile.DisplayName,
		found.CreatedAt.Format(detailDateFormat),
	)
	return []platform.Message{platform.Text{Text: text}}, nil
}

func (h *Handler) add(ctx context.Context, src platform.Source, args []string) ([]platform.Message, error) {
	if len(args) != 2 {
		return nil, ArgCountError{"2"}
	}
	date, err := time.Parse(DateFormat, args[1])
	if err != nil {
		return nil, ErrInvalidDate
	}

	envType := event.EnvUser
	if src.Type == platform.SourceGroup {
		envType = event.EnvGroup
	}
	created, err := h.repo.Create(ctx, event.Event{
		Name:      args[0],
		Date:      date,
		Category:  h.category.Name,
		EnvType:   envType,
		CreatedBy: src.UserID,
		GroupID:   src.GroupID,
		CreatedAt: h.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	h.publish(ctx, event_bus.EventCreated, created)

	menu, err := h.viewMenu(ctx, src, 0)
	if err != nil {
		return nil, err
	}
	return []platform.Message{menu, platform.Text{Text: h.category.Noun + " created successfully!"}}, nil
}

func (h *Handler) addTemplate() []platform.Message {
	return []platform.Message{
		platform.Text{Text: fmt.Sprintf("Please copy below input template and replace %q and \"date\" as you wish, then Send", h.category.Placeholder)},
		platform.Text{Text: fmt.Sprintf("%s %q %s", h.category.command("add"), h.category.Placeholder, h.clock.Now().Format(DateFormat))},
	}
}

func (h *Handler) delete(ctx context.Context, src platform.Source, args []string) ([]platform.Message, error) {
	if len(args) != 1 {
		return nil, ArgCountError{"1"}
	}
	found, err := h.repo.FindByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, NotFoundError{h.category.Noun}
	}

	if err := h.repo.Remove(ctx, found.ID); err != nil {
		return nil, err
	}
	h.publish(ctx, event_bus.EventDeleted, *found)

	menu, err := h.viewMenu(ctx, src, 0)
	if err != nil {
		return nil, err
	}
	return []platform.Message{menu, platform.Text{Text: h.category.Noun + " deleted successfully!"}}, nil
}

func (h *Handler) deleteConfirm(ctx context.Context, args []string) ([]platform.Message, error) {
	if len(args) != 1 {
		return nil, ArgCountError{"1"}
	}
	found, err := h.repo.FindByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, NotFoundError{h.category.Noun}
	}

	confirm := carousel.Confirm{
		Title:   fmt.Sprintf("Delete %s [%s] ?", found.Name, h.clock.Now().Format(DateFormat)),
		Type:    "postback",
		YesText: h.category.command("delete") + " " + found.ID,
		NoText:  h.category.command("view"),
	}
	return []platform.Message{platform.ConfirmMessage{Confirm: confirm}}, nil
}

func (h *Handler) edit(ctx context.Context, src platform.Source, args []string) ([]platform.Message, error) {
	if len(args) != 3 {
		return nil, ArgCountError{"3"}
	}
	date, err := time.Parse(DateFormat, args[2])
	if err != nil {
		return nil, ErrInvalidDate
	}
	found, err := h.repo.FindByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, NotFoundError{h.category.Noun}
	}

	// Fetch current state, produce new state, persist new state.
	updated := *found
	updated.Name = args[1]
	updated.Date = date
	if err := h.repo.Save(ctx, updated); err != nil {
		return nil, err
	}
	h.publish(ctx, event_bus.EventUpdated, updated)

	menu, err := h.viewMenu(ctx, src, 0)
	if err != nil {
		return nil, err
	}
	return []platform.Message{menu, platform.Text{Text: h.category.Noun + " edited successfully!"}}, nil
}

func (h *Handler) editTemplate(ctx context.Context, args []string) ([]platform.Message, error) {
	if len(args) != 1 {
		return nil, ArgCountError{"1"}
	}
	found, err := h.repo.FindByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, NotFoundError{h.category.Noun}
	}

	return []platform.Message{
		platform.Text{Text: fmt.Sprintf("Please copy below edit template and replace %q and \"date\" as you wish, then Send", h.category.Placeholder)},
		platform.Text{Text: fmt.Sprintf("%s %s %q %s", h.category.command("edit"), found.ID, found.Name, found.Date.Format(DateFormat))},
	}, nil
}

func (h *Handler) scopeFilter(src platform.Source) event.Filter {
	filter := event.Filter{Category: h.category.Name}
	if src.Type == platform.SourceGroup {
		filter.EnvType = event.EnvGroup
		filter.GroupID = src.GroupID
	} else {
		filter.EnvType = event.EnvUser
		filter.CreatedBy = src.UserID
	}
	return filter
}

func (h *Handler) publish(ctx context.Context, notificationType event_bus.NotificationType, e event.Event) {
	if h.bus == nil {
		return
	}
	h.bus.Publish(event_bus.NewNotification(ctx, notificationType, event_bus.EventChange{
		ID:        e.ID,
		Name:      e.Name,
		Date:      e.Date,
		Category:  string(e.Category),
		EnvType:   string(e.EnvType),
		CreatedBy: e.CreatedBy,
		GroupID:   e.GroupID,
	}))
}
