package carousel

import (
	"fmt"
	"strconv"

	"github.com/akademos/schedulebot/pkg/event"
)

// Commands carries the full command names one category routes its card
// actions to, e.g. "!exam_view" or "!replacement_delete_confirm".
type Commands struct {
	View          string
	Detail        string
	EditTemplate  string
	DeleteConfirm string
	AddTemplate   string
	MainMenu      string
}

type direction int

const (
	previous direction = iota
	next
)

func eventCard(e event.Event, position int, expired bool, cmds Commands) Column {
	expiredStatus := ""
	if expired {
		expiredStatus = " - Expired"
	}
	return Column{
		Title: fmt.Sprintf("[%d%s] %s", position+1, expiredStatus, e.Name),
		Text:  e.Date.Format("2 January 2006"),
		MenuItems: []MenuItem{
			{Type: postbackType, Label: "View Detail", Data: cmds.Detail + " " + e.ID},
			{Type: postbackType, Label: "Edit", Data: cmds.EditTemplate + " " + e.ID},
			{Type: postbackType, Label: "Delete", Data: cmds.DeleteConfirm + " " + e.ID},
		},
	}
}

// navigationCard renders a pager card. All three items route to the same
// target page; the platform convention for "no content" is a single space.
func navigationCard(dir direction, page int, cmds Commands) Column {
	glyph, word := ">>>", "Next"
	if dir == previous {
		glyph, word = "<<<", "Previous"
	}
	data := cmds.View + " " + strconv.Itoa(page)
	return Column{
		Title: " ",
		Text:  " ",
		MenuItems: []MenuItem{
			{Type: postbackType, Label: glyph, Data: data},
			{Type: postbackType, Label: word, Data: data},
			{Type: postbackType, Label: glyph, Data: data},
		},
	}
}
