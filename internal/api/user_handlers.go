package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikita-rudenko/exercise-tracker/internal/response"
	"github.com/nikita-rudenko/exercise-tracker/internal/service"
)

func PostUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.NewUserRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("invalid request body"))
			return
		}

		if err := service.ValidateNewUserRequest(&req); err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		user, err := service.RegisterUser(c.Request.Context(), app.UserRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
