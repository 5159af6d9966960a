package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

var errorNotFound = fmt.Errorf("not found")

type badRequestError struct {
	error
}

func sendError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var berr badRequestError

	switch {
	case errors.Is(err, errorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.As(err, &berr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, viewmodel.ErrNotEditing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *server) get(f func() (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		result, err := s.locked(f)

		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// handleP binds uri, query and, when there is a body, JSON into P before
// calling f.
func handleP[P any](s *server, f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if c.Request.ContentLength > 0 {
			err = c.ShouldBindJSON(&params)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		result, err := s.locked(func() (any, error) { return f(&params) })

		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// locked runs f holding the server mutex, releasing it even if f panics.
func (s *server) locked(f func() (any, error)) (any, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return f()
}

func validateGrid(params *GridParams) error {
	if params.Offset != nil && *params.Offset < 0 {
		return badRequestError{errors.Errorf("invalid offset: %v", *params.Offset)}
	}
	if params.Limit != nil && *params.Limit < 0 {
		return badRequestError{errors.Errorf("invalid limit: %v", *params.Limit)}
	}
	return nil
}

func paginate[T any](col []T, offset, limit *int) []T {
	if offset != nil {
		if *offset > len(col) {
			return []T{}
		}

		col = col[*offset:]
	}

	if limit != nil && *limit < len(col) {
		col = col[:*limit]
	}

	return col
}
