package middleware

import (
	"log"

	"steamboost/internal/console"
	"steamboost/internal/models"
	"steamboost/internal/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser resolves the cookie session against the user directory and
// stores the result under "CurrentUser". Stale sessions are cleared.
func InjectUser(con *console.Console) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored := session.Load(c)
		if stored.IsAuthenticated() {
			if s, ok := con.Resolve(stored); ok {
				c.Set(currentUserKey, s)
			} else if err := session.Clear(c); err != nil {
				log.Printf("clear stale session for %s: %v", stored.Username, err)
			}
		}

		c.Next()
	}
}

// CurrentSession returns the session injected by InjectUser, anonymous if none.
func CurrentSession(c *gin.Context) models.Session {
	if v, ok := c.Get(currentUserKey); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Session{}
}
