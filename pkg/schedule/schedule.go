package schedule

import (
	"github.com/akademos/schedulebot/pkg/carousel"
	"github.com/akademos/schedulebot/pkg/event"
)

// MainMenuCommand returns the user to the bot's top-level menu.
const MainMenuCommand = "!woy"

// DateFormat is the only accepted input form for event dates (DD-MM-YYYY,
// strictly zero padded).
const DateFormat = "02-01-2006"

// Category describes one event collection. Both collections share the
// exact same command surface and behavior; only the strings differ.
type Category struct {
	Name        event.Category
	Noun        string
	Title       string
	EmptyText   string
	Placeholder string
}

var Exam = Category{
	Name:        event.CategoryExam,
	Noun:        "Exam",
	Title:       "All Exams",
	EmptyText:   "No exam yet",
	Placeholder: "exam name",
}

var Replacement = Category{
	Name:        event.CategoryReplacement,
	Noun:        "Replacement",
	Title:       "All Replacements",
	EmptyText:   "No replacement yet",
	Placeholder: "replacement name",
}

func (c Category) prefix() string {
	return "!" + string(c.Name) + "_"
}

func (c Category) command(op string) string {
	return c.prefix() + op
}

func (c Category) commands() carousel.Commands {
	return carousel.Commands{
		View:          c.command("view"),
		Detail:        c.command("detail"),
		EditTemplate:  c.command("edit_template"),
		DeleteConfirm: c.command("delete_confirm"),
		AddTemplate:   c.command("add_template"),
		MainMenu:      MainMenuCommand,
	}
}

func (c Category) labels() carousel.Labels {
	return carousel.Labels{
		Title:     c.Title,
		EmptyText: c.EmptyText,
	}
}
