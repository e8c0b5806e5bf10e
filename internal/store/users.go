package store

import (
	"fmt"
	"sync"
	"time"

	"steamboost/internal/models"
)

// UserDirectory — справочник пользователей в памяти процесса.
// Пользователи только добавляются: ни удаления, ни изменения нет.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
	creds Credentials
	now   func() time.Time
}

func NewUserDirectory(creds Credentials) *UserDirectory {
	if creds == nil {
		creds = PlainCredentials{}
	}
	return &UserDirectory{
		users: make(map[string]models.User),
		creds: creds,
		now:   time.Now,
	}
}

// Add stores a new user with the password sealed by the directory's
// Credentials. It returns ErrUserExists if the username is taken.
func (d *UserDirectory) Add(username, password string, role models.UserRole) (models.User, error) {
	sealed, err := d.creds.Seal(password)
	if err != nil {
		return models.User{}, fmt.Errorf("seal password for %s: %w", username, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[username]; ok {
		return models.User{}, ErrUserExists
	}

	user := models.User{
		Username:  username,
		Password:  sealed,
		Role:      role,
		CreatedAt: d.now(),
	}
	d.users[username] = user
	d.order = append(d.order, username)
	return user, nil
}

func (d *UserDirectory) Get(username string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[username]
	return u, ok
}

// Authenticate looks up the exact (username, password) pair.
func (d *UserDirectory) Authenticate(username, password string) (models.User, bool) {
	u, ok := d.Get(username)
	if !ok {
		return models.User{}, false
	}
	if !d.creds.Match(u.Password, password) {
		return models.User{}, false
	}
	return u, true
}

// List returns users in creation order.
func (d *UserDirectory) List() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.users[name])
	}
	return out
}

func (d *UserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
