package service

import (
	"github.com/qaboard-dev/qaboard/internal/domain"
)

type QuestionService interface {
	Create(data domain.QuestionCreationData) (domain.QuestionId, error)
	Detail(id domain.QuestionId, viewer *domain.User) (*domain.QuestionDetail, error)
}

type Question struct {
	storage   QuestionStorage
	validator QuestionValidator
}

type QuestionStorage interface {
	CreateQuestion(data domain.QuestionCreationData) (domain.QuestionId, error)
	GetQuestion(id domain.QuestionId) (domain.Question, error)
	GetUser(id domain.UserId) (domain.User, error)
	ListReplies(questionId domain.QuestionId) ([]domain.Reply, error)
	ListVotes(kind domain.VoteKind, questionId domain.QuestionId) ([]domain.Vote, error)
	LabelFields() ([]domain.Labels, error)
	UserNames() (map[domain.UserId]string, error)
}

type QuestionValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewQuestion(storage QuestionStorage, validator QuestionValidator) *Question {
	return &Question{storage, validator}
}

// Create validates and persists a new question. Labels arrive as the
// raw form value; "" (the omitted case) is stored as-is, never NULL.
// Duplicate titles surface from storage as a validation error.
func (q *Question) Create(data domain.QuestionCreationData) (domain.QuestionId, error) {
	if err := q.validator.Title(data.Title); err != nil {
		return -1, err
	}
	if err := q.validator.Content(data.Content); err != nil {
		return -1, err
	}
	return q.storage.CreateQuestion(data)
}

// Detail resolves the full question-page bundle. viewer may be nil
// (unauthenticated), in which case IsOwner is false.
func (q *Question) Detail(id domain.QuestionId, viewer *domain.User) (*domain.QuestionDetail, error) {
	question, err := q.storage.GetQuestion(id)
	if err != nil {
		return nil, err
	}

	author, err := q.storage.GetUser(question.AuthorId)
	if err != nil {
		return nil, err
	}

	replies, err := q.storage.ListReplies(id)
	if err != nil {
		return nil, err
	}

	likes, err := q.storage.ListVotes(domain.VoteLike, id)
	if err != nil {
		return nil, err
	}

	dislikes, err := q.storage.ListVotes(domain.VoteDislike, id)
	if err != nil {
		return nil, err
	}

	fields, err := q.storage.LabelFields()
	if err != nil {
		return nil, err
	}

	names, err := q.storage.UserNames()
	if err != nil {
		return nil, err
	}

	return &domain.QuestionDetail{
		Question:  question,
		Author:    author,
		Replies:   replies,
		Likes:     likes,
		Dislikes:  dislikes,
		IsOwner:   viewer != nil && viewer.Id == question.AuthorId,
		Labels:    domain.LabelSet(fields),
		UserNames: names,
	}, nil
}
