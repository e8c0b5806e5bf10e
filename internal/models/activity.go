package models

import "time"

type ActivityAction string

const (
	ActionRegister     ActivityAction = "register"
	ActionSubmit       ActivityAction = "submit"
	ActionStatusChange ActivityAction = "status_change"
)

// Activity — запись журнала действий (регистрация, заявки, смена статусов).
type Activity struct {
	ID        string
	At        time.Time
	Actor     string
	RequestID int64 // 0, если запись не относится к заявке
	Action    ActivityAction
	Details   string
}
