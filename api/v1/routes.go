package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface is implemented by the API handler.
type ServerInterface interface {
	// (GET /pool)
	GetPool(c *gin.Context)
	// (GET /runs)
	ListRuns(c *gin.Context, params ListRunsParams)
	// (POST /runs)
	StartRun(c *gin.Context)
	// (GET /runs/{id})
	GetRun(c *gin.Context, id string)
}

// RegisterHandlers mounts si on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/pool", si.GetPool)
	router.GET("/runs", func(c *gin.Context) {
		var params ListRunsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: "invalid query parameters: " + err.Error()})
			return
		}
		si.ListRuns(c, params)
	})
	router.POST("/runs", si.StartRun)
	router.GET("/runs/:id", func(c *gin.Context) {
		si.GetRun(c, c.Param("id"))
	})
}
