package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/logger"
	mw "github.com/qaboard-dev/qaboard/internal/middleware"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

type CommonTemplateData struct {
	Viewer *domain.User
	Error  string
}

// homePage feeds the listing templates (full page and ajax fragment).
type homePage struct {
	Questions   []domain.QuestionSummary
	Labels      []string
	ActiveLabel string
	LabelColor  string
}

type questionListData struct {
	Questions []domain.QuestionSummary
	Page      string
}

type replyView struct {
	domain.Reply
	AuthorName string
	Html       template.HTML
}

type questionPage struct {
	Question     domain.Question
	Author       domain.User
	ContentHtml  template.HTML
	Replies      []replyView
	LikeCount    int
	DislikeCount int
	IsOwner      bool
	Labels       []string
	ActiveLabel  string // always "", the sidebar partial expects the field
}

type askPage struct {
	Labels []string
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	buf, err := h.execute(name, TemplateData{
		Data:   data,
		Common: CommonTemplateData{Viewer: mw.GetUserFromContext(r), Error: errMsg},
	})
	if err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}
	_, _ = buf.WriteTo(w)
}

// renderToString renders a template into a string, for embedding a
// fragment inside a structured JSON response.
func (h *Handler) renderToString(r *http.Request, name string, data any) (string, error) {
	buf, err := h.execute(name, TemplateData{
		Data:   data,
		Common: CommonTemplateData{Viewer: mw.GetUserFromContext(r)},
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *Handler) execute(name string, wrapped TemplateData) (*bytes.Buffer, error) {
	tmpl, ok := h.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %s not found", name)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, name, wrapped); err != nil {
		return nil, err
	}
	return buf, nil
}
