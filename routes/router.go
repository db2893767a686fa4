package routes

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jamapi/config"
	"jamapi/controllers"
	"jamapi/middlewares"
)

func SetupRouter(cfg *config.Config, log *zap.Logger, ct controllers.Controllers) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/", middlewares.TokenAuth(cfg.APIToken, cfg.Debug))
	{
		codejams := api.Group("/codejams")
		{
			codejams.GET("", ct.Jams.List)
			codejams.GET("/:id", ct.Jams.Get)
			codejams.POST("", ct.Jams.Create)
			codejams.PATCH("/:id", ct.Jams.Modify)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", ct.Teams.List)
			teams.GET("/find", ct.Teams.Find)
			teams.GET("/:id", ct.Teams.Get)
			teams.GET("/:id/users", ct.Teams.Users)
			teams.POST("/:id/users/:user_id", ct.Teams.AddUser)
			teams.DELETE("/:id/users/:user_id", ct.Teams.RemoveUser)
		}

		users := api.Group("/users")
		{
			users.GET("", ct.Users.List)
			users.GET("/:id", ct.Users.Get)
			users.POST("/:id", ct.Users.Create)
			users.GET("/:id/current_team", ct.Users.CurrentTeam)
			users.GET("/:id/details/:jam_id", ct.Users.GetDetail)
			users.POST("/:id/details/:jam_id", ct.Users.UpsertDetail)
		}

		infractions := api.Group("/infractions")
		{
			infractions.GET("", ct.Infractions.List)
			infractions.GET("/:id", ct.Infractions.Get)
			infractions.POST("", ct.Infractions.Create)
		}

		winners := api.Group("/winners")
		{
			winners.GET("/:jam_id", ct.Winners.Get)
			winners.POST("/:jam_id", ct.Winners.Create)
		}
	}

	return r
}
