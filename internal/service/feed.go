package service

import (
	"github.com/qaboard-dev/qaboard/internal/domain"
)

type FeedService interface {
	List(order domain.FeedOrder, dir domain.SortDirection) ([]domain.QuestionSummary, error)
	FilterByLabel(token string, colorFlag string) (domain.FilteredFeed, error)
	Labels() ([]string, error)
}

type Feed struct {
	storage FeedStorage
}

type FeedStorage interface {
	ListQuestions(order domain.FeedOrder, dir domain.SortDirection) ([]domain.QuestionSummary, error)
	FilterQuestionsByLabel(token string) ([]domain.QuestionSummary, error)
	LabelFields() ([]domain.Labels, error)
}

func NewFeed(storage FeedStorage) *Feed {
	return &Feed{storage}
}

// List assembles the question/author join in the requested order.
// OrderNone passes through as the unordered listing.
func (f *Feed) List(order domain.FeedOrder, dir domain.SortDirection) ([]domain.QuestionSummary, error) {
	return f.storage.ListQuestions(order, dir)
}

// FilterByLabel narrows the feed to questions whose labels field
// contains token as a substring. The colorFlag sentinel "0" means the
// viewer cleared the filter and the full unordered feed comes back.
// AllLabels is derived from the unfiltered table in both branches.
func (f *Feed) FilterByLabel(token string, colorFlag string) (domain.FilteredFeed, error) {
	var questions []domain.QuestionSummary
	var err error
	active := ""

	if colorFlag == domain.NoFilterFlag {
		questions, err = f.storage.ListQuestions(domain.OrderNone, domain.Asc)
	} else {
		questions, err = f.storage.FilterQuestionsByLabel(token)
		active = token
	}
	if err != nil {
		return domain.FilteredFeed{}, err
	}

	labels, err := f.Labels()
	if err != nil {
		return domain.FilteredFeed{}, err
	}

	return domain.FilteredFeed{
		Questions:   questions,
		AllLabels:   labels,
		ActiveLabel: active,
		ColorFlag:   colorFlag,
	}, nil
}

// Labels derives the sidebar label set from every question's labels
// field, regardless of any active filter.
func (f *Feed) Labels() ([]string, error) {
	fields, err := f.storage.LabelFields()
	if err != nil {
		return nil, err
	}
	return domain.LabelSet(fields), nil
}
