package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop-booking-api/internal/model"
	"barbershop-booking-api/internal/store"
)

// UserKey is where RequireSession places the signed-in user in the gin
// context.
const UserKey = "user"

// RequireSession rejects requests while the store is still loading or when
// no user is signed in (single-user-per-device model: the session lives in
// the store, not in a token).
func RequireSession(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st.Loading() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "state not loaded yet"})
			return
		}
		u := st.Current()
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		c.Set(UserKey, u)
		c.Next()
	}
}

// RequireAdmin gates the admin panel routes. Must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user RequireSession stored, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	u, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return u
}
