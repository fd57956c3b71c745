package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qaboard-dev/qaboard/internal/api"
	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/errors"
	mw "github.com/qaboard-dev/qaboard/internal/middleware"
	"github.com/qaboard-dev/qaboard/internal/utils"
)

// ShowQuestion renders the full question page: the question with its
// author, every reply in insertion order and the like/dislike tallies.
func (h *Handler) ShowQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "question"), "question id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := h.question.Detail(domain.QuestionId(id), mw.GetUserFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replies := make([]replyView, 0, len(detail.Replies))
	for _, reply := range detail.Replies {
		replies = append(replies, replyView{
			Reply:      reply,
			AuthorName: detail.UserNames[reply.AuthorId],
			Html:       h.tp.Render(reply.Content),
		})
	}

	h.renderTemplate(w, r, "question", questionPage{
		Question:     detail.Question,
		Author:       detail.Author,
		ContentHtml:  h.tp.Render(detail.Question.Content),
		Replies:      replies,
		LikeCount:    len(detail.Likes),
		DislikeCount: len(detail.Dislikes),
		IsOwner:      detail.IsOwner,
		Labels:       detail.Labels,
	})
}

func (h *Handler) AskForm(w http.ResponseWriter, r *http.Request) {
	labels, err := h.feed.Labels()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.renderTemplate(w, r, "ask", askPage{Labels: labels})
}

// CreateQuestion handles the ask-form submit. An unauthenticated
// submit is bounced back to the form rather than rejected; validation
// failures re-render the form with the message.
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	viewer := mw.GetUserFromContext(r)
	if viewer == nil {
		http.Redirect(w, r, "/ask", http.StatusSeeOther)
		return
	}

	data := domain.QuestionCreationData{
		Author:  *viewer,
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Labels:  domain.Labels(r.FormValue("labels")),
	}

	if _, err := h.question.Create(data); err != nil {
		if errors.IsValidation(err) {
			labels, labelsErr := h.feed.Labels()
			if labelsErr != nil {
				utils.WriteErrorAndStatusCode(w, labelsErr)
				return
			}
			h.renderTemplateWithError(w, r, "ask", askPage{Labels: labels}, err.Error())
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// CreateQuestionAPI is the JSON variant of CreateQuestion, mounted
// behind the auth-required API group.
func (h *Handler) CreateQuestionAPI(w http.ResponseWriter, r *http.Request) {
	viewer := mw.GetUserFromContext(r)
	if viewer == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateQuestionRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.question.Create(domain.QuestionCreationData{
		Author:  *viewer,
		Title:   req.Title,
		Content: req.Content,
		Labels:  domain.Labels(req.Labels),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// CreateReplyAPI is the JSON variant of CreateReply, mounted behind
// the auth-required API group.
func (h *Handler) CreateReplyAPI(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "question"), "question id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	viewer := mw.GetUserFromContext(r)
	if viewer == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replyId, err := h.reply.Create(domain.ReplyCreationData{
		Author:     *viewer,
		QuestionId: domain.QuestionId(id),
		Content:    req.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": replyId})
}

// CreateReply appends a reply to a question and bounces back to its
// page. Posting a reply needs a session.
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "question"), "question id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	viewer := mw.GetUserFromContext(r)
	if viewer == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	_, err = h.reply.Create(domain.ReplyCreationData{
		Author:     *viewer,
		QuestionId: domain.QuestionId(id),
		Content:    r.FormValue("content"),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/questions/%d", id), http.StatusSeeOther)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, domain.VoteLike)
}

func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, domain.VoteDislike)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request, kind domain.VoteKind) {
	id, err := parseIntParam(chi.URLParam(r, "question"), "question id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	viewer := mw.GetUserFromContext(r)
	if viewer == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := h.votes.Vote(kind, domain.QuestionId(id), *viewer); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/questions/%d", id), http.StatusSeeOther)
}
