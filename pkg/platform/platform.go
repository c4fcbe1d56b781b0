package platform

import (
	"context"

	"github.com/akademos/schedulebot/pkg/carousel"
)

type SourceType string

const (
	SourceUser  SourceType = "user"
	SourceGroup SourceType = "group"
)

// Source identifies the chat a webhook event originated from.
type Source struct {
	Type    SourceType `json:"type"`
	UserID  string     `json:"userId"`
	GroupID string     `json:"groupId,omitempty"`
}

type Profile struct {
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
}

type ProfileProvider interface {
	GetUserProfile(ctx context.Context, userID string) (Profile, error)
}

type Replier interface {
	Reply(ctx context.Context, replyToken string, messages []Message) error
}

type Client interface {
	ProfileProvider
	Replier
}

// Message is anything that can be sent back to the platform as one reply
// message. Payload returns the wire representation.
type Message interface {
	Payload() any
}

type Text struct {
	Text string
}

func (t Text) Payload() any {
	return textPayload{Type: "text", Text: t.Text}
}

// CarouselMessage renders a carousel menu as a platform template message.
type CarouselMessage struct {
	Carousel carousel.Carousel
}

func (m CarouselMessage) Payload() any {
	columns := make([]columnPayload, 0, len(m.Carousel.Columns))
	for _, col := range m.Carousel.Columns {
		actions := make([]actionPayload, 0, len(col.MenuItems))
		for _, item := range col.MenuItems {
			actions = append(actions, actionPayload{Type: item.Type, Label: item.Label, Data: item.Data})
		}
		columns = append(columns, columnPayload{Title: col.Title, Text: col.Text, Actions: actions})
	}
	return templatePayload{
		Type:    "template",
		AltText: m.Carousel.Title,
		Template: carouselTemplate{
			Type:    "carousel",
			Columns: columns,
		},
	}
}

// ConfirmMessage renders a yes/no prompt whose options post back full
// command strings.
type ConfirmMessage struct {
	Confirm carousel.Confirm
}

func (m ConfirmMessage) Payload() any {
	return templatePayload{
		Type:    "template",
		AltText: m.Confirm.Title,
		Template: confirmTemplate{
			Type: "confirm",
			Text: m.Confirm.Title,
			Actions: []actionPayload{
				{Type: m.Confirm.Type, Label: "Yes", Data: m.Confirm.YesText},
				{Type: m.Confirm.Type, Label: "No", Data: m.Confirm.NoText},
			},
		},
	}
}

type textPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type actionPayload struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Data  string `json:"data"`
}

type columnPayload struct {
	Title   string          `json:"title"`
	Text    string          `json:"text"`
	Actions []actionPayload `json:"actions"`
}

type carouselTemplate struct {
	Type    string          `json:"type"`
	Columns []columnPayload `json:"columns"`
}

type confirmTemplate struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Actions []actionPayload `json:"actions"`
}

type templatePayload struct {
	Type     string `json:"type"`
	AltText  string `json:"altText"`
	Template any    `json:"template"`
}
