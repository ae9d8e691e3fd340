package credits

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, balances BalanceReader) {
	router.GET("/credits", GetCreditsHandler(balances))
}
