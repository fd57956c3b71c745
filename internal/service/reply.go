package service

import (
	"github.com/qaboard-dev/qaboard/internal/domain"
)

type ReplyService interface {
	Create(data domain.ReplyCreationData) (domain.ReplyId, error)
}

type Reply struct {
	storage   ReplyStorage
	validator ReplyValidator
}

type ReplyStorage interface {
	CreateReply(data domain.ReplyCreationData) (domain.ReplyId, error)
}

type ReplyValidator interface {
	Content(content string) error
}

func NewReply(storage ReplyStorage, validator ReplyValidator) *Reply {
	return &Reply{storage, validator}
}

func (r *Reply) Create(data domain.ReplyCreationData) (domain.ReplyId, error) {
	if err := r.validator.Content(data.Content); err != nil {
		return -1, err
	}
	return r.storage.CreateReply(data)
}
