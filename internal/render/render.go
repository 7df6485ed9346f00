package render

import (
	"github.com/gin-gonic/gin"

	"bluewear/internal/session"
)

// Page renders a template with the navbar state every page shares: the
// current user, the cart badge count and any pending flash notice. Keys
// in data win over the shared ones.
func Page(c *gin.Context, status int, name string, data gin.H) {
	sess := session.FromContext(c)
	u := sess.User()

	base := gin.H{
		"User":      u,
		"IsAdmin":   u.IsAdmin(),
		"CartCount": sess.Cart.Len(),
		"Notice":    sess.Flash(),
	}
	for k, v := range data {
		base[k] = v
	}
	c.HTML(status, name, base)
}
