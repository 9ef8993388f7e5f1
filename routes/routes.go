package routes

import (
	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	clientCtl := controllers.NewClientController(s)
	gameCtl := controllers.NewGameController(s)
	loanCtl := controllers.NewLoanController(s)

	// ------------------------------
	// 客户（编辑表单要整表，不分页）
	// ------------------------------
	client := r.Group("/client")
	{
		client.GET("", clientCtl.ListClients)
		client.PUT("", clientCtl.SaveClient)
		client.PUT("/:id", clientCtl.SaveClient)
		client.DELETE("/:id", clientCtl.DeleteClient)
	}

	// ------------------------------
	// 游戏
	// ------------------------------
	game := r.Group("/game")
	{
		game.GET("", gameCtl.ListGames) // ?title=
		game.PUT("", gameCtl.SaveGame)
		game.PUT("/:id", gameCtl.SaveGame)
	}

	// ------------------------------
	// 借出
	// ------------------------------
	loan := r.Group("/loan")
	{
		loan.POST("", loanCtl.FindPage) // ?idGame=&idClient=&date= + body 分页
		loan.PUT("", loanCtl.SaveLoan)
		loan.PUT("/:id", loanCtl.SaveLoan)
		loan.DELETE("/:id", loanCtl.DeleteLoan)
	}
}
