package handler

import "github.com/gin-gonic/gin"

// Result is what a handler produces: a status code and an optional json body
type Result struct {
	Status int
	Body   any
}

// Error is the json shape of every error response
type Error struct {
	Message string `json:"error" example:"user not found"`
}

// Success is the json shape of acknowledgment responses
type Success struct {
	Success bool `json:"success" example:"true"`
	NoteId  int  `json:"noteId,omitempty" example:"1"`
}

// Wrapper adapts a Result-returning handler into a gin handler
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
