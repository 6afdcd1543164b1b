package router

import (
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/menu"

	"github.com/gin-gonic/gin"
)

func NewRouter(menuHandler *menu.Handler) *gin.Engine {
	r := gin.Default()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	Register(r, menuHandler)

	return r
}

// Register attaches the public menu routes to an existing engine so main
// can layer middleware (CORS) first.
func Register(r *gin.Engine, menuHandler *menu.Handler) {
	public := r.Group("/public")
	{
		public.GET("/menu", menuHandler.GetMenu)
		public.POST("/menu/refresh", menuHandler.Refresh)
		public.POST("/options/price", menuHandler.OptionPrice)
		public.GET("/options/groups", menuHandler.AddonGroups)
	}
}
