package domain

import (
	"time"
)

type Question struct {
	Id         QuestionId
	Title      string
	Content    string
	NumReplies int // owned counter, incremented transactionally by the reply creator
	Labels     Labels
	AuthorId   UserId
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuestionSummary is one row of the question/author join shown on the
// listing page.
type QuestionSummary struct {
	Question
	AuthorName string
}

// to iterate thru layers: handler -> service -> storage
type QuestionCreationData struct {
	Author  User
	Title   string
	Content string
	Labels  Labels
}

// QuestionDetail aggregates everything the question page renders.
type QuestionDetail struct {
	Question  Question
	Author    User
	Replies   []Reply
	Likes     []Vote
	Dislikes  []Vote
	IsOwner   bool
	Labels    []string // sidebar label set, always from the unfiltered table
	UserNames map[UserId]string
}

// FilteredFeed is the label filter result. Questions is the (possibly
// narrowed) feed; AllLabels always reflects the full question table.
type FilteredFeed struct {
	Questions   []QuestionSummary
	AllLabels   []string
	ActiveLabel string // "" when no filter is active
	ColorFlag   string
}
