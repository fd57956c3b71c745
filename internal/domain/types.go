package domain

type (
	QuestionId = int64
	ReplyId    = int64
	VoteId     = int64
	UserId     = int64

	// Labels is the raw stored form: zero or more comma-joined label
	// tokens, "" meaning "no labels". It is never NULL in storage.
	Labels = string
)

// FeedOrder is the closed set of single-key sorts the feed supports.
// OrderNone is the fallback for unrecognized keys and means "no ORDER
// BY at all", not "order by creation date".
type FeedOrder int

const (
	OrderNone FeedOrder = iota
	OrderCreated
	OrderReplies
	OrderTitle
	OrderUpdated
)

// ParseFeedOrder maps the order labels used by the listing UI onto the
// enum. Unknown labels fall through to OrderNone.
func ParseFeedOrder(s string) FeedOrder {
	switch s {
	case "Date Created":
		return OrderCreated
	case "Number of Replies":
		return OrderReplies
	case "Title":
		return OrderTitle
	case "Last Updated":
		return OrderUpdated
	default:
		return OrderNone
	}
}

type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

// ParseSortDirection treats anything that is not "asc" as descending.
func ParseSortDirection(s string) SortDirection {
	if s == "asc" {
		return Asc
	}
	return Desc
}

// NoFilterFlag is the sentinel the filter endpoint receives when the
// viewer cleared the label selection.
const NoFilterFlag = "0"
