package service

import (
	"errors"
	"testing"

	"github.com/qaboard-dev/qaboard/internal/domain"
	internal_errors "github.com/qaboard-dev/qaboard/internal/errors"
	"github.com/qaboard-dev/qaboard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockQuestionStorage mocks the QuestionStorage interface.
type MockQuestionStorage struct {
	createQuestionFunc func(data domain.QuestionCreationData) (domain.QuestionId, error)
	getQuestionFunc    func(id domain.QuestionId) (domain.Question, error)
	getUserFunc        func(id domain.UserId) (domain.User, error)
	listRepliesFunc    func(questionId domain.QuestionId) ([]domain.Reply, error)
	listVotesFunc      func(kind domain.VoteKind, questionId domain.QuestionId) ([]domain.Vote, error)
	labelFieldsFunc    func() ([]domain.Labels, error)
	userNamesFunc      func() (map[domain.UserId]string, error)
}

func (m *MockQuestionStorage) CreateQuestion(data domain.QuestionCreationData) (domain.QuestionId, error) {
	if m.createQuestionFunc != nil {
		return m.createQuestionFunc(data)
	}
	return 1, nil
}

func (m *MockQuestionStorage) GetQuestion(id domain.QuestionId) (domain.Question, error) {
	if m.getQuestionFunc != nil {
		return m.getQuestionFunc(id)
	}
	return domain.Question{Id: id}, nil
}

func (m *MockQuestionStorage) GetUser(id domain.UserId) (domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockQuestionStorage) ListReplies(questionId domain.QuestionId) ([]domain.Reply, error) {
	if m.listRepliesFunc != nil {
		return m.listRepliesFunc(questionId)
	}
	return nil, nil
}

func (m *MockQuestionStorage) ListVotes(kind domain.VoteKind, questionId domain.QuestionId) ([]domain.Vote, error) {
	if m.listVotesFunc != nil {
		return m.listVotesFunc(kind, questionId)
	}
	return nil, nil
}

func (m *MockQuestionStorage) LabelFields() ([]domain.Labels, error) {
	if m.labelFieldsFunc != nil {
		return m.labelFieldsFunc()
	}
	return nil, nil
}

func (m *MockQuestionStorage) UserNames() (map[domain.UserId]string, error) {
	if m.userNamesFunc != nil {
		return m.userNamesFunc()
	}
	return nil, nil
}

func TestQuestionCreate(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		content     string
		storageErr  error
		expectError bool
	}{
		{name: "successful creation", title: "Intro", content: "How?", expectError: false},
		{name: "empty title", title: "", content: "How?", expectError: true},
		{name: "empty content", title: "Intro", content: "", expectError: true},
		{name: "duplicate title", title: "Intro", content: "How?", storageErr: internal_errors.Validation("The title has already been taken"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStorage := &MockQuestionStorage{
				createQuestionFunc: func(data domain.QuestionCreationData) (domain.QuestionId, error) {
					if tc.storageErr != nil {
						return -1, tc.storageErr
					}
					return 42, nil
				},
			}

			s := NewQuestion(mockStorage, &utils.QuestionValidator{})
			id, err := s.Create(domain.QuestionCreationData{
				Author:  domain.User{Id: 1, Name: "alice"},
				Title:   tc.title,
				Content: tc.content,
			})

			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.QuestionId(42), id)
			}
		})
	}
}

func TestQuestionCreateDefaultsLabelsToEmpty(t *testing.T) {
	var stored domain.QuestionCreationData
	mockStorage := &MockQuestionStorage{
		createQuestionFunc: func(data domain.QuestionCreationData) (domain.QuestionId, error) {
			stored = data
			return 1, nil
		},
	}

	s := NewQuestion(mockStorage, &utils.QuestionValidator{})
	_, err := s.Create(domain.QuestionCreationData{
		Author:  domain.User{Id: 1},
		Title:   "Intro",
		Content: "How?",
	})
	require.NoError(t, err)
	assert.Equal(t, "", stored.Labels)
}

func TestQuestionDetail(t *testing.T) {
	question := domain.Question{Id: 7, Title: "Intro", AuthorId: 1, Labels: "math,fun", NumReplies: 2}
	mockStorage := &MockQuestionStorage{
		getQuestionFunc: func(id domain.QuestionId) (domain.Question, error) {
			assert.Equal(t, domain.QuestionId(7), id)
			return question, nil
		},
		getUserFunc: func(id domain.UserId) (domain.User, error) {
			return domain.User{Id: id, Name: "alice"}, nil
		},
		listRepliesFunc: func(questionId domain.QuestionId) ([]domain.Reply, error) {
			return []domain.Reply{
				{Id: 1, QuestionId: questionId, AuthorId: 2, Content: "first"},
				{Id: 2, QuestionId: questionId, AuthorId: 1, Content: "second"},
			}, nil
		},
		listVotesFunc: func(kind domain.VoteKind, questionId domain.QuestionId) ([]domain.Vote, error) {
			if kind == domain.VoteLike {
				return []domain.Vote{{Id: 1, QuestionId: questionId, UserId: 2}}, nil
			}
			return nil, nil
		},
		labelFieldsFunc: func() ([]domain.Labels, error) {
			return []domain.Labels{"math,fun", "science"}, nil
		},
		userNamesFunc: func() (map[domain.UserId]string, error) {
			return map[domain.UserId]string{1: "alice", 2: "bob"}, nil
		},
	}

	s := NewQuestion(mockStorage, &utils.QuestionValidator{})

	t.Run("owner viewer", func(t *testing.T) {
		detail, err := s.Detail(7, &domain.User{Id: 1, Name: "alice"})
		require.NoError(t, err)

		assert.Equal(t, question, detail.Question)
		assert.Equal(t, "alice", detail.Author.Name)
		assert.Len(t, detail.Replies, 2)
		assert.Len(t, detail.Likes, 1)
		assert.Empty(t, detail.Dislikes)
		assert.True(t, detail.IsOwner)
		assert.Equal(t, []string{"math", "fun", "science"}, detail.Labels)
		assert.Equal(t, "bob", detail.UserNames[2])
	})

	t.Run("other viewer", func(t *testing.T) {
		detail, err := s.Detail(7, &domain.User{Id: 2, Name: "bob"})
		require.NoError(t, err)
		assert.False(t, detail.IsOwner)
	})

	t.Run("unauthenticated viewer", func(t *testing.T) {
		detail, err := s.Detail(7, nil)
		require.NoError(t, err)
		assert.False(t, detail.IsOwner)
	})
}

func TestQuestionDetailNotFound(t *testing.T) {
	mockStorage := &MockQuestionStorage{
		getQuestionFunc: func(id domain.QuestionId) (domain.Question, error) {
			return domain.Question{}, internal_errors.NotFound("Question not found")
		},
	}

	s := NewQuestion(mockStorage, &utils.QuestionValidator{})
	_, err := s.Detail(404, nil)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestQuestionDetailStorageError(t *testing.T) {
	mockStorage := &MockQuestionStorage{
		listRepliesFunc: func(questionId domain.QuestionId) ([]domain.Reply, error) {
			return nil, errors.New("storage error")
		},
	}

	s := NewQuestion(mockStorage, &utils.QuestionValidator{})
	_, err := s.Detail(7, nil)
	assert.Error(t, err)
}
