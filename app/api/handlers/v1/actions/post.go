package actions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteme-app/noteme/business/v1/notes"
	"github.com/noteme-app/noteme/platform/web/handler"
	"github.com/noteme-app/noteme/sys"
)

// Request is the action-dispatch payload
type Request struct {
	Action       string `json:"action" example:"addNote"`
	UserId       string `json:"userId" example:"gabriel_r"`
	PasswordHash string `json:"passwordHash" example:"5e884898da28..."`
	Text         string `json:"text" example:"my note text"`
}

// Post godoc
// @Summary Execute a mutation
// @Description Dispatches a createUser or addNote action against the shared document
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body actions.Request true "Action payload"
// @Success 200 {object} handler.Success
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/actions [post]
func Post(ctx *gin.Context) handler.Result {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid json body"},
		}
	}

	// the action tag is dispatched before any store call, so an unknown
	// action never touches the store
	switch req.Action {
	case "createUser":
		err := notes.CreateUser(ctx, notes.NewUser{
			UserId:       req.UserId,
			PasswordHash: req.PasswordHash,
		})
		if err != nil {
			return errorResult(err)
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   handler.Success{Success: true},
		}
	case "addNote":
		noteId, err := notes.AddNote(ctx, notes.NewNote{
			UserId:       req.UserId,
			PasswordHash: req.PasswordHash,
			Text:         req.Text,
		})
		if err != nil {
			return errorResult(err)
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   handler.Success{Success: true, NoteId: noteId},
		}
	default:
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "unknown action"},
		}
	}
}

func errorResult(err error) handler.Result {
	switch {
	case errors.Is(err, notes.ErrMissingFields),
		errors.Is(err, notes.ErrInvalidLogin),
		errors.Is(err, notes.ErrUserExists):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, notes.ErrUserNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, notes.ErrWrongPassword):
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		sys.R.Log.Error("action failed: ", err.Error())
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "internal server error"},
		}
	}
}
