package service

import (
	"errors"
	"testing"

	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockReplyStorage struct {
	createReplyFunc func(data domain.ReplyCreationData) (domain.ReplyId, error)
}

func (m *MockReplyStorage) CreateReply(data domain.ReplyCreationData) (domain.ReplyId, error) {
	if m.createReplyFunc != nil {
		return m.createReplyFunc(data)
	}
	return 1, nil
}

func TestReplyCreate(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		storageErr  error
		expectError bool
	}{
		{name: "successful creation", content: "an answer", expectError: false},
		{name: "empty content", content: "", expectError: true},
		{name: "storage error", content: "an answer", storageErr: errors.New("storage error"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStorage := &MockReplyStorage{
				createReplyFunc: func(data domain.ReplyCreationData) (domain.ReplyId, error) {
					if tc.storageErr != nil {
						return -1, tc.storageErr
					}
					return 5, nil
				},
			}

			s := NewReply(mockStorage, &utils.ReplyValidator{})
			id, err := s.Create(domain.ReplyCreationData{
				Author:     domain.User{Id: 1},
				QuestionId: 7,
				Content:    tc.content,
			})

			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.ReplyId(5), id)
			}
		})
	}
}

type MockVoteStorage struct {
	createVoteFunc func(kind domain.VoteKind, questionId domain.QuestionId, userId domain.UserId) (domain.VoteId, error)
}

func (m *MockVoteStorage) CreateVote(kind domain.VoteKind, questionId domain.QuestionId, userId domain.UserId) (domain.VoteId, error) {
	if m.createVoteFunc != nil {
		return m.createVoteFunc(kind, questionId, userId)
	}
	return 1, nil
}

func TestVote(t *testing.T) {
	mockStorage := &MockVoteStorage{
		createVoteFunc: func(kind domain.VoteKind, questionId domain.QuestionId, userId domain.UserId) (domain.VoteId, error) {
			assert.Equal(t, domain.VoteDislike, kind)
			assert.Equal(t, domain.QuestionId(7), questionId)
			assert.Equal(t, domain.UserId(2), userId)
			return 9, nil
		},
	}

	id, err := NewVotes(mockStorage).Vote(domain.VoteDislike, 7, domain.User{Id: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.VoteId(9), id)
}
