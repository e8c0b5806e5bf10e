// Package console implements the ordering console: login and registration
// against the user directory, top-up request submission, and the admin-side
// status lifecycle of the request ledger.
package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"steamboost/internal/models"
	"steamboost/internal/store"
)

// Options switches between the feature sets of the console.
type Options struct {
	// EnableAuth requires an authenticated session to submit requests.
	EnableAuth bool
	// EnableOwnership records the submitter on each request and enables
	// the per-user cabinet.
	EnableOwnership bool
}

// DefaultOptions is the full feature set.
var DefaultOptions = Options{EnableAuth: true, EnableOwnership: true}

type Console struct {
	users    *store.UserDirectory
	ledger   *store.RequestLedger
	activity *store.ActivityLog
	opts     Options
	epoch    string
	now      func() time.Time
}

func New(users *store.UserDirectory, ledger *store.RequestLedger, activity *store.ActivityLog, opts Options) *Console {
	return &Console{
		users:    users,
		ledger:   ledger,
		activity: activity,
		opts:     opts,
		epoch:    uuid.NewString(),
		now:      time.Now,
	}
}

// SetClock overrides the time source used for request dates.
func (c *Console) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Console) Options() Options {
	return c.opts
}

//
// СЕССИИ
//

func (c *Console) Login(username, password string) (models.Session, error) {
	user, ok := c.users.Authenticate(normalizeUsername(username), password)
	if !ok {
		return models.Session{}, ErrInvalidCredentials
	}
	return c.sessionFor(user), nil
}

// Register creates a user with role "user" and returns its session.
func (c *Console) Register(username, password, confirmPassword string) (models.Session, error) {
	username = normalizeUsername(username)
	if password != confirmPassword {
		return models.Session{}, ErrPasswordMismatch
	}
	if username == "" || password == "" {
		return models.Session{}, ErrMissingCredentials
	}

	user, err := c.users.Add(username, password, models.RoleUser)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return models.Session{}, ErrUsernameTaken
		}
		return models.Session{}, fmt.Errorf("register %s: %w", username, err)
	}

	c.activity.Record(models.Activity{
		Actor:   user.Username,
		Action:  models.ActionRegister,
		Details: "Зарегистрирован пользователь " + user.Username,
	})
	return c.sessionFor(user), nil
}

// Resolve re-reads the session's user from the directory. A session issued
// by another run of the console (a cookie from before a restart) or whose
// user no longer exists is anonymous, even if the username is taken again.
func (c *Console) Resolve(s models.Session) (models.Session, bool) {
	if !s.IsAuthenticated() || s.Epoch != c.epoch {
		return models.Session{}, false
	}
	user, ok := c.users.Get(s.Username)
	if !ok {
		return models.Session{}, false
	}
	return c.sessionFor(user), true
}

func (c *Console) sessionFor(user models.User) models.Session {
	return models.Session{Username: user.Username, Role: user.Role, Epoch: c.epoch}
}

// normalizeUsername is applied identically on registration and login.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

//
// ЗАЯВКИ
//

// Submit validates and appends a new pending request owned by the session user.
func (c *Console) Submit(s models.Session, steamLogin string, amount int64, contact string) (models.TopUpRequest, error) {
	if c.opts.EnableAuth && !s.IsAuthenticated() {
		return models.TopUpRequest{}, ErrUnauthenticated
	}

	steamLogin = strings.TrimSpace(steamLogin)
	contact = strings.TrimSpace(contact)
	if steamLogin == "" || contact == "" {
		return models.TopUpRequest{}, ErrEmptyField
	}
	if amount <= 0 {
		return models.TopUpRequest{}, ErrInvalidAmount
	}

	req := models.TopUpRequest{
		SteamLogin:  steamLogin,
		Amount:      amount,
		Contact:     contact,
		Status:      models.StatusPending,
		CreatedDate: today(c.now()),
	}
	if c.opts.EnableOwnership {
		req.Owner = s.Username
	}
	req = c.ledger.Append(req)

	c.activity.Record(models.Activity{
		Actor:     s.Username,
		RequestID: req.ID,
		Action:    models.ActionSubmit,
		Details:   fmt.Sprintf("Создана заявка №%d на %d руб. для %s", req.ID, req.Amount, req.SteamLogin),
	})
	return req, nil
}

// UpdateStatus sets the status of request id. Only admins may call it;
// repeating the same call leaves the ledger unchanged.
func (c *Console) UpdateStatus(s models.Session, id int64, status models.RequestStatus) (models.TopUpRequest, error) {
	if !s.IsAdmin() {
		return models.TopUpRequest{}, ErrForbidden
	}
	if !status.Valid() {
		return models.TopUpRequest{}, ErrInvalidStatus
	}

	prev, updated, ok := c.ledger.UpdateStatus(id, status)
	if !ok {
		return models.TopUpRequest{}, ErrRequestNotFound
	}

	if prev != status {
		c.activity.Record(models.Activity{
			Actor:     s.Username,
			RequestID: id,
			Action:    models.ActionStatusChange,
			Details:   fmt.Sprintf("Статус изменён: %s → %s", prev, status),
		})
	}
	return updated, nil
}

// ListOwn returns the session user's requests in ledger order.
func (c *Console) ListOwn(s models.Session) ([]models.TopUpRequest, error) {
	if !s.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !c.opts.EnableOwnership {
		return nil, nil
	}
	return c.ledger.ByOwner(s.Username), nil
}

func (c *Console) ListAll(s models.Session) ([]models.TopUpRequest, error) {
	if !s.IsAdmin() {
		return nil, ErrForbidden
	}
	return c.ledger.All(), nil
}

// Request returns a single request for the admin panel.
func (c *Console) Request(s models.Session, id int64) (models.TopUpRequest, error) {
	if !s.IsAdmin() {
		return models.TopUpRequest{}, ErrForbidden
	}
	req, ok := c.ledger.Get(id)
	if !ok {
		return models.TopUpRequest{}, ErrRequestNotFound
	}
	return req, nil
}

// History returns the journal of one request, oldest first.
func (c *Console) History(s models.Session, id int64) ([]models.Activity, error) {
	if _, err := c.Request(s, id); err != nil {
		return nil, err
	}
	return c.activity.ForRequest(id), nil
}

// Activity returns up to limit journal entries, newest first.
func (c *Console) Activity(s models.Session, limit int) ([]models.Activity, error) {
	if !s.IsAdmin() {
		return nil, ErrForbidden
	}
	return c.activity.Latest(limit), nil
}

func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
