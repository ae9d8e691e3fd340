package redesign

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, redesigner Redesigner) {
	router.POST("/redesign", Handler(redesigner))
}
