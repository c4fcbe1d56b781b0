package carousel

import (
	"errors"
	"time"

	"github.com/akademos/schedulebot/pkg/event"
)

var ErrPageOutOfBound = errors.New("page out of bound")

// Labels carries the category-specific strings for the menu header.
type Labels struct {
	Title     string
	EmptyText string
}

// AssembleMenu paginates the given events and returns the requested page
// prefixed with the category header card. The requested page must lie in
// [0, pageCount); anything else yields ErrPageOutOfBound.
func AssembleMenu(events []event.Event, page int, now time.Time, cmds Commands, labels Labels) (Carousel, error) {
	pages := Paginate(events, now, cmds)

	if page < 0 || page >= len(pages) {
		return Carousel{}, ErrPageOutOfBound
	}

	text := "Choose an action"
	if len(events) == 0 {
		text = labels.EmptyText
	}
	header := Column{
		Title: labels.Title,
		Text:  text,
		MenuItems: []MenuItem{
			{Type: postbackType, Label: " ", Data: " "},
			{Type: postbackType, Label: "Add", Data: cmds.AddTemplate},
			{Type: postbackType, Label: "Back to Menu", Data: cmds.MainMenu},
		},
	}

	columns := make([]Column, 0, len(pages[page])+1)
	columns = append(columns, header)
	columns = append(columns, pages[page]...)

	return Carousel{Title: labels.Title, Columns: columns}, nil
}
