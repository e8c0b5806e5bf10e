package models

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusCompleted RequestStatus = "completed"
	StatusRejected  RequestStatus = "rejected"
)

// DateLayout — формат даты создания заявки.
const DateLayout = "2006-01-02"

// Statuses lists every request status in lifecycle order.
var Statuses = []RequestStatus{
	StatusPending,
	StatusApproved,
	StatusCompleted,
	StatusRejected,
}

// AdminTransitions are the statuses offered as actions in the admin panel.
var AdminTransitions = []RequestStatus{
	StatusApproved,
	StatusCompleted,
	StatusRejected,
}

// ParseStatus accepts only the four known statuses.
func ParseStatus(s string) (RequestStatus, bool) {
	status := RequestStatus(s)
	return status, status.Valid()
}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) String() string {
	return string(s)
}

// Label — подпись статуса для интерфейса.
func (s RequestStatus) Label() string {
	switch s {
	case StatusPending:
		return "В ожидании"
	case StatusApproved:
		return "Одобрено"
	case StatusCompleted:
		return "Выполнено"
	case StatusRejected:
		return "Отклонено"
	default:
		return string(s)
	}
}

// BadgeClass — css-класс бейджа статуса.
func (s RequestStatus) BadgeClass() string {
	switch s {
	case StatusPending:
		return "badge-pending"
	case StatusApproved:
		return "badge-approved"
	case StatusCompleted:
		return "badge-completed"
	case StatusRejected:
		return "badge-rejected"
	default:
		return "badge-unknown"
	}
}

// ActionLabel — подпись кнопки перевода заявки в статус.
func (s RequestStatus) ActionLabel() string {
	switch s {
	case StatusPending:
		return "Вернуть в ожидание"
	case StatusApproved:
		return "Одобрить"
	case StatusCompleted:
		return "Выполнено"
	case StatusRejected:
		return "Отклонить"
	default:
		return string(s)
	}
}

// TopUpRequest — заявка на пополнение Steam-кошелька.
type TopUpRequest struct {
	ID          int64
	SteamLogin  string
	Amount      int64 // рубли
	Contact     string
	Status      RequestStatus
	CreatedDate time.Time
	Owner       string // пусто для анонимных заявок
}

func (r TopUpRequest) Date() string {
	return r.CreatedDate.Format(DateLayout)
}
