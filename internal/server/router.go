package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"steamboost/internal/config"
	"steamboost/internal/console"
	"steamboost/internal/handlers"
	"steamboost/internal/middleware"
	"steamboost/internal/models"
	"steamboost/internal/session"
	"steamboost/web"

	"github.com/gin-gonic/gin"
)

func formatRub(amount int64) string {
	return fmt.Sprintf("%d руб.", amount)
}

func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func logFormatter(p gin.LogFormatterParams) string {
	reqID, _ := p.Keys["RequestID"].(string)
	return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %#v | %s\n",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		reqID,
	)
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"rub":      formatRub,
		"datetime": formatDateTime,
	}).ParseFS(web.Templates, "templates/*.html")
}

func NewRouter(cfg *config.Config, con *console.Console) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), gin.LoggerWithFormatter(logFormatter), gin.Recovery())

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(session.Middleware([]byte(cfg.SessionSecret)))
	r.Use(middleware.InjectUser(con))

	h := handlers.New(con)

	// ГЛАВНАЯ
	r.GET("/", h.IndexPage)

	// AUTH
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// ЗАЯВКИ
	// без авторизации заявку может отправить и анонимный посетитель
	if con.Options().EnableAuth {
		r.POST("/requests", middleware.RequireAuth(), h.SubmitRequest)
	} else {
		r.POST("/requests", h.SubmitRequest)
	}

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/cabinet", h.Cabinet)

	// АДМИНКА — только админ
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("", h.AdminPanel)
	admin.POST("/requests/:id/status", h.ChangeRequestStatus)
	admin.GET("/requests/:id/history", h.ShowRequestHistory)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
