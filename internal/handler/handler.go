package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/qaboard-dev/qaboard/internal/config"
	"github.com/qaboard-dev/qaboard/internal/logger"
	"github.com/qaboard-dev/qaboard/internal/markdown"
	"github.com/qaboard-dev/qaboard/internal/service"
)

type Handler struct {
	feed      service.FeedService
	question  service.QuestionService
	reply     service.ReplyService
	votes     service.VoteService
	auth      service.AuthService
	templates map[string]*template.Template
	tp        *markdown.TextProcessor
	cfg       *config.Config
}

func New(
	feed service.FeedService,
	question service.QuestionService,
	reply service.ReplyService,
	votes service.VoteService,
	auth service.AuthService,
	templates map[string]*template.Template,
	tp *markdown.TextProcessor,
	cfg *config.Config,
) *Handler {
	return &Handler{feed, question, reply, votes, auth, templates, tp, cfg}
}

// writeJSON sets headers and writes the body in one pass; nothing can
// be amended once the status line is flushed.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}
