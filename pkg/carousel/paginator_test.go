package carousel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/akademos/schedulebot/pkg/event"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

var testCommands = Commands{
	View:          "!exam_view",
	Detail:        "!exam_detail",
	EditTemplate:  "!exam_edit_template",
	DeleteConfirm: "!exam_delete_confirm",
	AddTemplate:   "!exam_add_template",
	MainMenu:      "!woy",
}

// makeEvents produces n events with strictly increasing future dates.
func makeEvents(n int) []event.Event {
	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			ID:       fmt.Sprintf("id-%d", i),
			Name:     fmt.Sprintf("Event %d", i),
			Date:     testNow.AddDate(0, 0, i+1),
			Category: event.CategoryExam,
		}
	}
	return events
}

func isNavCard(c Column) bool {
	return c.Title == " "
}

func countEventCards(p Page) int {
	count := 0
	for _, c := range p {
		if !isNavCard(c) {
			count++
		}
	}
	return count
}

func TestPaginate_SinglePage(t *testing.T) {
	for _, n := range []int{1, 5, 9} {
		t.Run(fmt.Sprintf("%d events fit on one page", n), func(t *testing.T) {
			pages := Paginate(makeEvents(n), testNow, testCommands)

			assert.Len(t, pages, 1)
			assert.Len(t, pages[0], n)
			assert.Equal(t, n, countEventCards(pages[0]))
		})
	}

	t.Run("empty collection still yields one valid page", func(t *testing.T) {
		pages := Paginate(nil, testNow, testCommands)

		assert.Len(t, pages, 1)
		assert.Empty(t, pages[0])
	})
}

func TestPaginate_Partition(t *testing.T) {
	for _, n := range []int{10, 15, 16, 22, 23, 30} {
		t.Run(fmt.Sprintf("%d events", n), func(t *testing.T) {
			remainder := (n - 8) % 7
			middleCount := (n - 8 - remainder) / 7

			pages := Paginate(makeEvents(n), testNow, testCommands)

			assert.Len(t, pages, middleCount+2)

			// Front: 8 event cards plus the next pager.
			assert.Equal(t, 8, countEventCards(pages[0]))
			assert.Len(t, pages[0], 9)

			// Middles: 7 event cards between two pagers.
			for k := 1; k <= middleCount; k++ {
				assert.Equal(t, 7, countEventCards(pages[k]))
				assert.Len(t, pages[k], 9)
			}

			// Back: the remainder after a previous pager.
			back := pages[len(pages)-1]
			assert.Equal(t, remainder, countEventCards(back))
			assert.Len(t, back, remainder+1)

			total := 0
			for _, p := range pages {
				total += countEventCards(p)
			}
			assert.Equal(t, n, total)
		})
	}
}

func TestPaginate_EmptyBackPage(t *testing.T) {
	// given 15 events: 8 front + 7 middle leaves a zero remainder
	pages := Paginate(makeEvents(15), testNow, testCommands)

	// then the terminal page still exists, carrying only the previous pager
	assert.Len(t, pages, 3)
	back := pages[2]
	assert.Len(t, back, 1)
	assert.True(t, isNavCard(back[0]))
	assert.Equal(t, "!exam_view 1", back[0].MenuItems[0].Data)
}

func TestPaginate_NavigationTargets(t *testing.T) {
	// 23 events: front + 2 middle pages + back
	pages := Paginate(makeEvents(23), testNow, testCommands)
	assert.Len(t, pages, 4)

	front := pages[0]
	assert.Equal(t, "!exam_view 1", front[8].MenuItems[0].Data)

	middle1 := pages[1]
	assert.Equal(t, "!exam_view 0", middle1[0].MenuItems[0].Data)
	assert.Equal(t, "!exam_view 2", middle1[8].MenuItems[0].Data)

	middle2 := pages[2]
	assert.Equal(t, "!exam_view 1", middle2[0].MenuItems[0].Data)
	assert.Equal(t, "!exam_view 3", middle2[8].MenuItems[0].Data)

	back := pages[3]
	assert.Equal(t, "!exam_view 2", back[0].MenuItems[0].Data)

	// all three pager entries route to the same page
	for _, item := range front[8].MenuItems {
		assert.Equal(t, "!exam_view 1", item.Data)
	}
}

func TestPaginate_NumberingContinuesAcrossPages(t *testing.T) {
	pages := Paginate(makeEvents(12), testNow, testCommands)

	// first event card on the second page is the ninth overall
	assert.True(t, strings.HasPrefix(pages[1][1].Title, "[9]"))
}

func TestPaginate_Ordering(t *testing.T) {
	t.Run("expired events sort after live ones", func(t *testing.T) {
		// given one long expired event dated before all live ones
		events := makeEvents(3)
		events = append(events, event.Event{
			ID:   "old",
			Name: "Old Event",
			Date: testNow.AddDate(0, 0, -10),
		})

		pages := Paginate(events, testNow, testCommands)

		last := pages[0][3]
		assert.Equal(t, "[4 - Expired] Old Event", last.Title)
	})

	t.Run("sort is stable for equal date and expiry", func(t *testing.T) {
		date := testNow.AddDate(0, 0, 2)
		events := []event.Event{
			{ID: "a", Name: "First", Date: date},
			{ID: "b", Name: "Second", Date: date},
			{ID: "c", Name: "Third", Date: date},
		}

		pages := Paginate(events, testNow, testCommands)

		assert.Equal(t, "[1] First", pages[0][0].Title)
		assert.Equal(t, "[2] Second", pages[0][1].Title)
		assert.Equal(t, "[3] Third", pages[0][2].Title)
	})

	t.Run("live events sort by date ascending", func(t *testing.T) {
		events := []event.Event{
			{ID: "late", Name: "Late", Date: testNow.AddDate(0, 0, 5)},
			{ID: "soon", Name: "Soon", Date: testNow.AddDate(0, 0, 1)},
		}

		pages := Paginate(events, testNow, testCommands)

		assert.Equal(t, "[1] Soon", pages[0][0].Title)
		assert.Equal(t, "[2] Late", pages[0][1].Title)
	})
}

func TestPaginate_ExpiryBoundary(t *testing.T) {
	t.Run("exactly 24 hours old is not expired", func(t *testing.T) {
		events := []event.Event{{ID: "x", Name: "Boundary", Date: testNow.Add(-24 * time.Hour)}}

		pages := Paginate(events, testNow, testCommands)

		assert.Equal(t, "[1] Boundary", pages[0][0].Title)
	})

	t.Run("one millisecond past 24 hours is expired", func(t *testing.T) {
		events := []event.Event{{ID: "x", Name: "Boundary", Date: testNow.Add(-24*time.Hour - time.Millisecond)}}

		pages := Paginate(events, testNow, testCommands)

		assert.Equal(t, "[1 - Expired] Boundary", pages[0][0].Title)
	})
}

func TestPaginate_DoesNotMutateInput(t *testing.T) {
	events := []event.Event{
		{ID: "late", Name: "Late", Date: testNow.AddDate(0, 0, 5)},
		{ID: "soon", Name: "Soon", Date: testNow.AddDate(0, 0, 1)},
	}

	Paginate(events, testNow, testCommands)

	assert.Equal(t, "late", events[0].ID)
	assert.Equal(t, "soon", events[1].ID)
}
