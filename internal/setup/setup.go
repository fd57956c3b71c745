// Package setup builds the application dependency graph.
package setup

import (
	"html/template"
	"path/filepath"

	"github.com/qaboard-dev/qaboard/internal/config"
	"github.com/qaboard-dev/qaboard/internal/handler"
	"github.com/qaboard-dev/qaboard/internal/jwt"
	"github.com/qaboard-dev/qaboard/internal/markdown"
	mw "github.com/qaboard-dev/qaboard/internal/middleware"
	"github.com/qaboard-dev/qaboard/internal/service"
	"github.com/qaboard-dev/qaboard/internal/storage/pg"
	"github.com/qaboard-dev/qaboard/internal/utils"
)

type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *mw.Auth
}

// templateSets maps each renderable name to the files composing it.
// The fragment set has no base layout, it is rendered inline.
var templateSets = map[string][]string{
	"home":          {"base.html", "home.html"},
	"question":      {"base.html", "question.html"},
	"ask":           {"base.html", "ask.html"},
	"login":         {"base.html", "login.html"},
	"register":      {"base.html", "register.html"},
	"question_list": {"question_list.html"},
}

func mustLoadTemplates(templatesPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template, len(templateSets))
	for name, files := range templateSets {
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, filepath.Join(templatesPath, f))
		}
		templates[name] = template.Must(template.ParseFiles(paths...))
	}
	return templates
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	authMw := mw.NewAuth(jwtService)

	feed := service.NewFeed(storage)
	question := service.NewQuestion(storage, &utils.QuestionValidator{})
	reply := service.NewReply(storage, &utils.ReplyValidator{})
	votes := service.NewVotes(storage)
	auth := service.NewAuth(storage, jwtService, &utils.CredentialsValidator{})

	h := handler.New(
		feed,
		question,
		reply,
		votes,
		auth,
		mustLoadTemplates(cfg.Public.TemplatesPath),
		markdown.New(),
		cfg,
	)

	return &Dependencies{Storage: storage, Handler: h, Auth: authMw}, nil
}
