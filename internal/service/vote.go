package service

import (
	"github.com/qaboard-dev/qaboard/internal/domain"
)

type VoteService interface {
	Vote(kind domain.VoteKind, questionId domain.QuestionId, voter domain.User) (domain.VoteId, error)
}

type Votes struct {
	storage VoteStorage
}

type VoteStorage interface {
	CreateVote(kind domain.VoteKind, questionId domain.QuestionId, userId domain.UserId) (domain.VoteId, error)
}

func NewVotes(storage VoteStorage) *Votes {
	return &Votes{storage}
}

// Vote appends one like/dislike event row. Dedup per (user, question)
// is not enforced here; tallies count rows.
func (v *Votes) Vote(kind domain.VoteKind, questionId domain.QuestionId, voter domain.User) (domain.VoteId, error) {
	return v.storage.CreateVote(kind, questionId, voter.Id)
}
