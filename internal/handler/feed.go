package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qaboard-dev/qaboard/internal/api"
	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/utils"
)

// Home renders the listing page: questions joined with their authors,
// oldest first, plus the label sidebar.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feed.List(domain.OrderCreated, domain.Asc)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	labels, err := h.feed.Labels()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "home", homePage{Questions: feed, Labels: labels})
}

// OrderFeed re-renders the question list fragment in the requested
// order. The page value is passed through to the template untouched.
func (h *Handler) OrderFeed(w http.ResponseWriter, r *http.Request) {
	order := domain.ParseFeedOrder(chi.URLParam(r, "order"))
	dir := domain.ParseSortDirection(chi.URLParam(r, "direction"))
	page := chi.URLParam(r, "page")

	feed, err := h.feed.List(order, dir)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "question_list", questionListData{Questions: feed, Page: page})
}

// FilterByLabel answers the asynchronous label filter with a rendered
// listing fragment wrapped in a success flag. The "color" form value
// "0" is the no-filter sentinel.
func (h *Handler) FilterByLabel(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	colorFlag := r.FormValue("color")

	res, err := h.feed.FilterByLabel(label, colorFlag)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	html, err := h.renderToString(r, "home", homePage{
		Questions:   res.Questions,
		Labels:      res.AllLabels,
		ActiveLabel: res.ActiveLabel,
		LabelColor:  res.ColorFlag,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.FilterResponse{Success: true, Html: html})
}
