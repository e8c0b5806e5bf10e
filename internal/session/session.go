// Package session keeps the browser's Session in a signed cookie.
package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"steamboost/internal/models"
)

const (
	CookieName = "steamboost_session"

	keyUsername = "username"
	keyRole     = "role"
	keyEpoch    = "epoch"
)

// Middleware installs the cookie-backed session store.
func Middleware(secret []byte) gin.HandlerFunc {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(CookieName, store)
}

// Load returns the session stored in the cookie, or an anonymous one.
func Load(c *gin.Context) models.Session {
	sess := sessions.Default(c)
	username, _ := sess.Get(keyUsername).(string)
	role, _ := sess.Get(keyRole).(string)
	epoch, _ := sess.Get(keyEpoch).(string)
	if username == "" {
		return models.Session{}
	}
	return models.Session{Username: username, Role: models.UserRole(role), Epoch: epoch}
}

func Save(c *gin.Context, s models.Session) error {
	sess := sessions.Default(c)
	sess.Set(keyUsername, s.Username)
	sess.Set(keyRole, string(s.Role))
	sess.Set(keyEpoch, s.Epoch)
	return sess.Save()
}

// Clear logs the browser out.
func Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
