package session

import (
	"github.com/gin-gonic/gin"
)

const CookieName = "bw_session"

const ctxSessionKey = "session"

// Middleware attaches the browser's session to the request, creating one
// (and setting the cookie) when the browser arrives without a usable
// token.
func (st *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(CookieName); err == nil {
			if sess, ok := st.Lookup(token); ok {
				c.Set(ctxSessionKey, sess)
				c.Next()
				return
			}
		}

		sess, token, err := st.Create()
		if err != nil {
			// without a session every page still renders, just stateless
			c.Next()
			return
		}
		c.SetCookie(CookieName, token, int(st.ttl.Seconds()), "/", "", false, true)
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// FromContext returns the request's session. Handlers behind Middleware
// always have one except in the degenerate signing-failure case, where a
// throwaway session keeps them nil-safe.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return newSession("", 0)
}
