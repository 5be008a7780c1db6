package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteme-app/noteme/platform/web/handler"
)

// Get godoc
// @Summary Healthcheck
// @Description Reports the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/healthcheck [get]
func Get(*gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   map[string]string{"status": "ok"},
	}
}
