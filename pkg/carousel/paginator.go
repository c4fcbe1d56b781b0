package carousel

import (
	"sort"
	"time"

	"github.com/akademos/schedulebot/pkg/event"
)

const (
	// Largest collection that still fits on a single page without pagers.
	singlePageMax = 9
	// Event cards on the front page; one slot is reserved for the next pager.
	frontSize = 8
	// Event cards on every middle page; two slots are reserved for pagers.
	middleSize = 7
)

const expiryAge = 24 * time.Hour

// expired reports whether an event date lies more than 24 hours in the
// past relative to now. Exactly 24 hours old is not expired.
func expired(date, now time.Time) bool {
	return now.Sub(date) > expiryAge
}

// Paginate maps an unordered event collection to an ordered sequence of
// pages. It is pure and deterministic: the current time is an explicit
// input and the input slice is never mutated.
//
// Events sort by expiry status first (live before expired), then by date
// ascending; ties keep their input order. Collections of up to nine
// events fit on one page. Larger collections split into a front page of
// eight cards, middle pages of seven, and a back page holding the
// remainder, with pager cards linking neighbouring pages.
func Paginate(events []event.Event, now time.Time, cmds Commands) []Page {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, ej := expired(sorted[i].Date, now), expired(sorted[j].Date, now)
		if ei != ej {
			return !ei
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cards := make([]Column, len(sorted))
	for i, e := range sorted {
		cards[i] = eventCard(e, i, expired(e.Date, now), cmds)
	}

	n := len(cards)
	if n <= singlePageMax {
		return []Page{Page(cards)}
	}

	remainder := (n - frontSize) % middleSize

	front := make(Page, 0, frontSize+1)
	front = append(front, cards[:frontSize]...)
	front = append(front, navigationCard(next, 1, cmds))

	middleCards := cards[frontSize : n-remainder]
	middleCount := len(middleCards) / middleSize
	pages := make([]Page, 0, middleCount+2)
	pages = append(pages, front)
	for k := 0; k < middleCount; k++ {
		chunk := middleCards[k*middleSize : (k+1)*middleSize]
		page := make(Page, 0, middleSize+2)
		page = append(page, navigationCard(previous, k, cmds))
		page = append(page, chunk...)
		page = append(page, navigationCard(next, k+2, cmds))
		pages = append(pages, page)
	}

	// The back page exists even when the remainder is zero; it then
	// carries only the previous pager.
	back := make(Page, 0, remainder+1)
	back = append(back, navigationCard(previous, middleCount, cmds))
	back = append(back, cards[n-remainder:]...)
	pages = append(pages, back)

	return pages
}
