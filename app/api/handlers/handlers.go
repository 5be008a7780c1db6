package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/noteme-app/noteme/app/api/handlers/v1/actions"
	"github.com/noteme-app/noteme/app/api/handlers/v1/healthcheck"
	"github.com/noteme-app/noteme/platform/web/handler"
	"github.com/noteme-app/noteme/platform/web/middleware"
	"github.com/noteme-app/noteme/sys"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	// non-POST/non-OPTIONS on the action route must answer 405, not 404
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Cors())
	r.Use(middleware.RateLimit(sys.R.Log, sys.R.Cache, sys.Configs.Cache.RateLimit, sys.Configs.Cache.RateWindow))
	r.POST("/v1/actions", handler.Wrapper(actions.Post))
}
