package history

import (
	"codeberg.org/roomrevive/server/roomrevive/history"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, store history.Store) {
	historyGroup := router.Group("/history")
	{
		historyGroup.GET("", ListHistoryHandler(store))
		historyGroup.POST("", SaveRedesignHandler(store))
		historyGroup.GET("/favorites", ListFavoritesHandler(store))
		historyGroup.PATCH("/:id", UpdateFavoriteHandler(store))
		historyGroup.DELETE("/:id", DeleteRedesignHandler(store))
	}
}
