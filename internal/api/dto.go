// Package api holds the wire-level request and response shapes.
package api

type CreateQuestionRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Labels  string `json:"labels"`
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// FilterResponse is the payload of the asynchronous label filter: a
// success flag plus the feed fragment rendered to a string.
type FilterResponse struct {
	Success bool   `json:"success"`
	Html    string `json:"html"`
}
