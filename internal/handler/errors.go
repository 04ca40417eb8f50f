package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/service"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/logger"
)

// fieldError is one entry of a 422 response body.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report json names ("current_status")
// instead of Go field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst. On failure it writes the
// 422 response and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetail(err)})
		return false
	}
	return true
}

func validationDetail(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  fieldMessage(fe),
				Type: fieldType(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []fieldError{{Loc: loc, Msg: "Input should be a valid " + typeErr.Type.String(), Type: "type_error"}}
	}

	return []fieldError{{Loc: []string{"body"}, Msg: "Invalid JSON body", Type: "json_invalid"}}
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "Field required"
	}
	return "Failed on " + fe.Tag() + " validation"
}

func fieldType(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "missing"
	}
	return fe.Tag()
}

// respondError maps service errors onto the external taxonomy. entity names
// the record kind in 404 messages ("Member not found").
func respondError(c *gin.Context, entity string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": entity + " not found"})
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No fields to update"})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
