package analysis

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, analyzer Analyzer) {
	router.POST("/analyze", Handler(analyzer))
}
