package handler

import (
	"net/http"
	"time"

	"github.com/qaboard-dev/qaboard/internal/domain"
	mw "github.com/qaboard-dev/qaboard/internal/middleware"
	"github.com/qaboard-dev/qaboard/internal/utils"
)

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login", nil)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "register", nil)
}

// Login exchanges credentials for a session cookie and sends the
// browser to the feed. Failures re-render the form with the message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	creds := domain.Credentials{
		Name:     r.FormValue("name"),
		Password: r.FormValue("password"),
	}

	token, err := h.auth.Login(creds)
	if err != nil {
		h.renderTemplateWithError(w, r, "login", nil, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.JwtTTL()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	creds := domain.Credentials{
		Name:     r.FormValue("name"),
		Password: r.FormValue("password"),
	}

	if _, err := h.auth.Register(creds); err != nil {
		h.renderTemplateWithError(w, r, "register", nil, err.Error())
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout expires the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     mw.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginAPI is the JSON variant of Login for non-browser clients; the
// token comes back in the body instead of a cookie.
func (h *Handler) LoginAPI(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(creds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
