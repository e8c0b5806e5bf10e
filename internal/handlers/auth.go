package handlers

import (
	"errors"
	"log"
	"net/http"

	"steamboost/internal/console"
	"steamboost/internal/models"
	"steamboost/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Title": "Регистрация", "Username": "", "error": ""})
}

type registerForm struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegisterError(c, http.StatusBadRequest, form.Username, "Некорректные данные")
		return
	}

	s, err := h.console.Register(form.Username, form.Password, form.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, console.ErrMissingCredentials):
			h.renderRegisterError(c, http.StatusBadRequest, form.Username, "Введите логин и пароль")
		case errors.Is(err, console.ErrPasswordMismatch):
			h.renderRegisterError(c, http.StatusBadRequest, form.Username, "Пароли не совпадают")
		case errors.Is(err, console.ErrUsernameTaken):
			h.renderRegisterError(c, http.StatusConflict, form.Username, "Пользователь уже существует")
		default:
			log.Printf("register %s: %v", form.Username, err)
			h.renderRegisterError(c, http.StatusInternalServerError, form.Username, "Ошибка сохранения пользователя")
		}
		return
	}

	if !h.startSession(c, s) {
		return
	}
	c.Redirect(http.StatusFound, "/?tab=request")
}

func (h *Handler) renderRegisterError(c *gin.Context, status int, username, msg string) {
	h.render(c, status, "register.html", gin.H{"Title": "Регистрация", "Username": username, "error": msg})
}

func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Вход", "Username": "", "error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{"Title": "Вход", "Username": "", "error": "Некорректные данные"})
		return
	}

	s, err := h.console.Login(form.Username, form.Password)
	if err != nil {
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title":    "Вход",
			"Username": form.Username,
			"error":    "Неверный логин или пароль",
		})
		return
	}

	if !h.startSession(c, s) {
		return
	}
	if s.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/?tab=request")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		log.Printf("logout: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) startSession(c *gin.Context, s models.Session) bool {
	if err := session.Save(c, s); err != nil {
		log.Printf("save session for %s: %v", s.Username, err)
		c.String(http.StatusInternalServerError, "Ошибка сохранения сессии")
		return false
	}
	return true
}
