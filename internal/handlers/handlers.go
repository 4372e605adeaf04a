// Package handlers is the screen boundary of the app: it collects form
// input, validates it before any store operation runs, invokes the
// store, and maps failures to the alert-style responses a screen would
// show.
package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fieldErrors turns validator failures into the per-field messages the
// form screens display.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid input"
		return out
	}
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = fe.Field() + " is required"
		case "email":
			out[fe.Field()] = "Invalid email format"
		case "min":
			out[fe.Field()] = fe.Field() + " is too short"
		default:
			out[fe.Field()] = "Invalid " + fe.Field()
		}
	}
	return out
}

func writeValidationErrors(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
}
