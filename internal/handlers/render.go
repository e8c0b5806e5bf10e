package handlers

import (
	"steamboost/internal/console"
	"steamboost/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler serves the pages of the ordering console.
type Handler struct {
	console *console.Console
}

func New(con *console.Console) *Handler {
	return &Handler{console: con}
}

// render — обёртка над c.HTML, которая во все шаблоны прокидывает текущую
// сессию и флаги функциональности.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	s := middleware.CurrentSession(c)
	opts := h.console.Options()

	data["CurrentUser"] = s
	data["CurrentUsername"] = s.Username
	data["CurrentUserRole"] = s.Role
	data["IsAuthed"] = s.IsAuthenticated()
	data["IsAdmin"] = s.IsAdmin()
	data["AuthEnabled"] = opts.EnableAuth
	data["OwnershipEnabled"] = opts.EnableOwnership
	data["Support"] = supportContacts

	// шаблоны сравнивают эти поля через eq, поэтому они всегда должны быть
	for _, key := range []string{"ActiveTab", "Title"} {
		if _, ok := data[key]; !ok {
			data[key] = ""
		}
	}

	c.HTML(status, tmpl, data)
}
