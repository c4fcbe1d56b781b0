package carousel

// MenuItem is a single tappable action on a card. Data holds the full
// command string the platform posts back when the item is selected.
type MenuItem struct {
	Type  string
	Label string
	Data  string
}

type Column struct {
	Title     string
	Text      string
	MenuItems []MenuItem
}

// Page is one screen of cards. Pages are derived on every view request,
// never persisted.
type Page []Column

type Carousel struct {
	Title   string
	Columns []Column
}

// Confirm is a yes/no prompt. YesText and NoText are full command strings
// re-invoked when the respective option is selected.
type Confirm struct {
	Title   string
	Type    string
	YesText string
	NoText  string
}

const postbackType = "postback"
