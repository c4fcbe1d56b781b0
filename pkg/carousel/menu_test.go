package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testLabels = Labels{Title: "All Exams", EmptyText: "No exam yet"}

func TestAssembleMenu(t *testing.T) {
	t.Run("header precedes the requested page", func(t *testing.T) {
		menu, err := AssembleMenu(makeEvents(3), 0, testNow, testCommands, testLabels)

		assert.NoError(t, err)
		assert.Equal(t, "All Exams", menu.Title)
		assert.Len(t, menu.Columns, 4)

		header := menu.Columns[0]
		assert.Equal(t, "All Exams", header.Title)
		assert.Equal(t, "Choose an action", header.Text)
		assert.Equal(t, []MenuItem{
			{Type: "postback", Label: " ", Data: " "},
			{Type: "postback", Label: "Add", Data: "!exam_add_template"},
			{Type: "postback", Label: "Back to Menu", Data: "!woy"},
		}, header.MenuItems)
	})

	t.Run("empty collection renders header only", func(t *testing.T) {
		menu, err := AssembleMenu(nil, 0, testNow, testCommands, testLabels)

		assert.NoError(t, err)
		assert.Len(t, menu.Columns, 1)
		assert.Equal(t, "No exam yet", menu.Columns[0].Text)
	})

	t.Run("second page of a windowed collection", func(t *testing.T) {
		menu, err := AssembleMenu(makeEvents(10), 1, testNow, testCommands, testLabels)

		assert.NoError(t, err)
		// header + previous pager + 2 remaining cards
		assert.Len(t, menu.Columns, 4)
		assert.True(t, isNavCard(menu.Columns[1]))
	})

	t.Run("negative page is out of bounds", func(t *testing.T) {
		_, err := AssembleMenu(makeEvents(3), -1, testNow, testCommands, testLabels)

		assert.ErrorIs(t, err, ErrPageOutOfBound)
	})

	t.Run("page equal to page count is out of bounds", func(t *testing.T) {
		_, err := AssembleMenu(makeEvents(10), 2, testNow, testCommands, testLabels)

		assert.ErrorIs(t, err, ErrPageOutOfBound)
	})
}
