package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikita-rudenko/exercise-tracker/internal/response"
	"github.com/nikita-rudenko/exercise-tracker/internal/service"
)

// ExerciseResponse echoes a created exercise with the date rendered as a
// calendar day.
type ExerciseResponse struct {
	User        string `json:"user"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one record of a user's exercise log.
type LogEntry struct {
	UserID      string `json:"userId"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

func PostExercise(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ExerciseRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("invalid request body"))
			return
		}

		if err := service.ValidateExerciseRequest(&req); err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		ex, err := service.CreateExercise(c.Request.Context(), app.ExerciseRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		c.JSON(http.StatusOK, ExerciseResponse{
			User:        ex.UserID,
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date.Format(service.DateLayout),
		})
	}
}

func GetLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := service.BuildLogQuery(service.LogParams{
			UserID: c.Query("userId"),
			From:   c.Query("from"),
			To:     c.Query("to"),
			Limit:  c.Query("limit"),
		})
		if err != nil {
			// Terminal: no query runs on invalid parameters.
			HandleError(c, app.Logger(), err)
			return
		}

		list, err := app.ExerciseRepo().ListExercises(c.Request.Context(), q)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		if len(list) == 0 {
			c.JSON(http.StatusNotFound, response.NotFound("Nothing found"))
			return
		}

		entries := make([]LogEntry, len(list))
		for i, ex := range list {
			entries[i] = LogEntry{
				UserID:      ex.UserID,
				Description: ex.Description,
				Duration:    ex.Duration,
				Date:        ex.Date.Format(service.DateLayout),
			}
		}
		c.JSON(http.StatusOK, entries)
	}
}
