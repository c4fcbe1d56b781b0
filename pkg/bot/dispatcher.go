package bot

import (
	"context"
	"strings"

	"github.com/akademos/schedulebot/pkg/platform"
	"github.com/akademos/schedulebot/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

// Handler serves one family of commands, recognized by prefix.
type Handler interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, src platform.Source, command string, args []string) []platform.Message
}

// WebhookEvent is one delivered platform event. Message text and
// postback data share the same command grammar.
type WebhookEvent struct {
	ReplyToken string          `json:"replyToken"`
	Source     platform.Source `json:"source"`
	Message    *Message        `json:"message,omitempty"`
	Postback   *Postback       `json:"postback,omitempty"`
}

type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Postback struct {
	Data string `json:"data"`
}

// Dispatcher tokenizes incoming command text and routes it to the first
// handler that claims the command.
type Dispatcher struct {
	replier  platform.Replier
	mainMenu []platform.Message
	handlers []Handler
}

func NewDispatcher(replier platform.Replier, mainMenu []platform.Message, handlers ...Handler) *Dispatcher {
	return &Dispatcher{replier: replier, mainMenu: mainMenu, handlers: handlers}
}

// Dispatch handles one webhook event to completion. Text that is not a
// command is ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, evt WebhookEvent) error {
	text := commandText(evt)
	if !strings.HasPrefix(text, "!") {
		return nil
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	command, args := tokens[0], tokens[1:]
	log.Debugf("dispatching command %s with %d args", command, len(args))

	messages := d.route(ctx, evt.Source, command, args)
	if len(messages) == 0 {
		return nil
	}
	return d.replier.Reply(ctx, evt.ReplyToken, messages)
}

func (d *Dispatcher) route(ctx context.Context, src platform.Source, command string, args []string) []platform.Message {
	if command == schedule.MainMenuCommand {
		return d.mainMenu
	}
	for _, h := range d.handlers {
		if h.CanHandle(command) {
			return h.Handle(ctx, src, command, args)
		}
	}
	return []platform.Message{platform.Text{Text: "Unknown command. Send " + schedule.MainMenuCommand + " to open the main menu."}}
}

func commandText(evt WebhookEvent) string {
	if evt.Postback != nil {
		return evt.Postback.Data
	}
	if evt.Message != nil {
		return evt.Message.Text
	}
	return ""
}
