package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"steamboost/internal/console"
	"steamboost/internal/middleware"

	"github.com/gin-gonic/gin"
)

type requestForm struct {
	SteamLogin string `form:"steam_login"`
	Amount     string `form:"amount"`
	Contact    string `form:"contact"`
}

func (h *Handler) SubmitRequest(c *gin.Context) {
	var form requestForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRequestError(c, http.StatusBadRequest, form, "Некорректные данные")
		return
	}

	// нечисловая сумма отсекается тем же правилом, что и отрицательная
	amount, err := strconv.ParseInt(strings.TrimSpace(form.Amount), 10, 64)
	if err != nil {
		amount = 0
	}

	req, err := h.console.Submit(middleware.CurrentSession(c), form.SteamLogin, amount, form.Contact)
	if err != nil {
		switch {
		case errors.Is(err, console.ErrUnauthenticated):
			h.renderRequestError(c, http.StatusUnauthorized, form, "Для создания заявки необходимо войти в систему")
		case errors.Is(err, console.ErrEmptyField):
			h.renderRequestError(c, http.StatusBadRequest, form, "Заполните Steam логин и контакты")
		case errors.Is(err, console.ErrInvalidAmount):
			h.renderRequestError(c, http.StatusBadRequest, form, "Сумма пополнения должна быть целым числом больше нуля")
		default:
			log.Printf("submit request: %v", err)
			h.renderRequestError(c, http.StatusInternalServerError, form, "Ошибка сохранения заявки")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/?tab=request&created=%d", req.ID))
}

func (h *Handler) renderRequestError(c *gin.Context, status int, form requestForm, msg string) {
	h.render(c, status, "index.html", gin.H{
		"ActiveTab": "request",
		"Form":      form,
		"error":     msg,
	})
}

// Cabinet — личный кабинет: заявки текущего пользователя.
func (h *Handler) Cabinet(c *gin.Context) {
	if !h.console.Options().EnableOwnership {
		c.Redirect(http.StatusFound, "/?tab=request")
		return
	}

	requests, err := h.console.ListOwn(middleware.CurrentSession(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.render(c, http.StatusOK, "cabinet.html", gin.H{
		"Title":     "Личный кабинет",
		"ActiveTab": "cabinet",
		"requests":  requests,
	})
}
