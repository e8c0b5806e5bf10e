package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"steamboost/internal/console"
	"steamboost/internal/middleware"
	"steamboost/internal/models"

	"github.com/gin-gonic/gin"
)

const activityLimit = 200

//
// ПАНЕЛЬ АДМИНИСТРАТОРА
//

func (h *Handler) AdminPanel(c *gin.Context) {
	s := middleware.CurrentSession(c)

	requests, err := h.console.ListAll(s)
	if err != nil {
		abortWithConsoleError(c, err)
		return
	}
	activity, err := h.console.Activity(s, activityLimit)
	if err != nil {
		abortWithConsoleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "admin.html", gin.H{
		"Title":       "Панель администратора",
		"ActiveTab":   "admin",
		"requests":    requests,
		"activity":    activity,
		"Transitions": models.AdminTransitions,
	})
}

//
// СМЕНА СТАТУСА
//

func (h *Handler) ChangeRequestStatus(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	status := models.RequestStatus(c.PostForm("status"))
	if _, err := h.console.UpdateStatus(middleware.CurrentSession(c), id, status); err != nil {
		abortWithConsoleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

//
// ИСТОРИЯ ЗАЯВКИ
//

func (h *Handler) ShowRequestHistory(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	s := middleware.CurrentSession(c)
	req, err := h.console.Request(s, id)
	if err != nil {
		abortWithConsoleError(c, err)
		return
	}
	logs, err := h.console.History(s, id)
	if err != nil {
		abortWithConsoleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "history.html", gin.H{
		"Title":     "История заявки",
		"ActiveTab": "admin",
		"request":   req,
		"logs":      logs,
	})
}

func parseRequestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID заявки")
		return 0, false
	}
	return id, true
}

func abortWithConsoleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, console.ErrForbidden):
		c.String(http.StatusForbidden, "Недостаточно прав")
	case errors.Is(err, console.ErrInvalidStatus):
		c.String(http.StatusBadRequest, "Некорректный статус")
	case errors.Is(err, console.ErrRequestNotFound):
		c.String(http.StatusNotFound, "Заявка не найдена")
	default:
		c.String(http.StatusInternalServerError, "Внутренняя ошибка")
	}
}
