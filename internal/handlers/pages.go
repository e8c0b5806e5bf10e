package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type service struct {
	Title       string
	Description string
	Metric      string
	Caption     string
}

type review struct {
	Title  string
	Author string
	Text   string
}

type contact struct {
	Channel string
	Value   string
}

var services = []service{
	{"Быстрое пополнение", "Пополнение за 5-10 минут", "5%", "комиссия"},
	{"Безопасность", "Гарантия безопасности аккаунта", "100%", "гарантия"},
	{"Круглосуточно", "Работаем 24/7 без выходных", "24/7", "поддержка"},
}

var reviews = []review{
	{"Отличный сервис!", "@gamer123", "Пополнил Steam за 3 минуты. Всё честно и быстро. Рекомендую!"},
	{"Надёжно", "@player456", "Уже третий раз пополняю через этот сервис. Никаких проблем, всё работает отлично."},
	{"Быстро и удобно", "@user789", "Очень удобный интерфейс, быстрое пополнение. Буду пользоваться ещё!"},
	{"Поддержка огонь", "@steamfan", "Возникли вопросы, поддержка ответила моментально. Профессионально!"},
}

var supportContacts = []contact{
	{"Telegram", "@steamboost_support"},
	{"Email", "support@steamboost.ru"},
	{"Телефон", "+7 (999) 123-45-67"},
}

// вкладки, которые отдаёт главная страница; кабинет и админка — отдельные маршруты
var indexTabs = map[string]struct{}{
	"request":  {},
	"services": {},
	"reviews":  {},
}

func (h *Handler) IndexPage(c *gin.Context) {
	tab := c.Query("tab")
	if _, ok := indexTabs[tab]; !ok {
		tab = "request"
	}

	data := gin.H{
		"ActiveTab": tab,
		"Services":  services,
		"Reviews":   reviews,
		"Form":      requestForm{},
	}
	if id, err := strconv.ParseInt(c.Query("created"), 10, 64); err == nil && id > 0 {
		data["Created"] = id
	}

	h.render(c, http.StatusOK, "index.html", data)
}
