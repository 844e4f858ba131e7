package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCount exposes the header badge count from the signed cart cookie.
// Best effort: a missing or invalid cookie just means zero. No API call
// is made for the badge.
func CartCount(codec *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if ref, ok := codec.Get(c); ok && ref.ItemCount > 0 {
			n = ref.ItemCount
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
