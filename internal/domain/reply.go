package domain

import "time"

type Reply struct {
	Id         ReplyId
	QuestionId QuestionId
	AuthorId   UserId
	Content    string
	CreatedAt  time.Time
}

type ReplyCreationData struct {
	Author     User
	QuestionId QuestionId
	Content    string
}

// Vote is one like or dislike event row. Votes are append-only and
// counted by row count; deduplication is not this layer's concern.
type Vote struct {
	Id         VoteId
	QuestionId QuestionId
	UserId     UserId
}

type VoteKind int

const (
	VoteLike VoteKind = iota
	VoteDislike
)
