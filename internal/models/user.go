package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User — запись справочника пользователей. Password хранится так, как его
// вернул store.Credentials (открытым текстом или bcrypt-хэшем).
type User struct {
	Username  string
	Password  string
	Role      UserRole
	CreatedAt time.Time
}

// Session — текущий участник, от имени которого выполняются действия.
// Нулевое значение означает анонимную сессию. Epoch привязывает сессию к
// запущенному экземпляру консоли: после перезапуска старые cookie недействительны.
type Session struct {
	Username string
	Role     UserRole
	Epoch    string
}

func (s Session) IsAuthenticated() bool {
	return s.Username != ""
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Role == RoleAdmin
}
