package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/winetasting-app/backend/internal/models"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var validate = newValidator()

// newValidator builds the shared request validator with the custom
// username and password rules.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	// Password must carry at least one lowercase, one uppercase, and one digit.
	v.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
		var lower, upper, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return lower && upper && digit
	})

	return v
}

// validationMessages flattens validator errors into field-level messages.
func validationMessages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
	}
	return messages
}

func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, models.Response{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{Success: false, Message: message})
}

func respondValidation(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, models.Response{
		Success: false,
		Message: "Validation failed",
		Errors:  validationMessages(err),
	})
}

// parsePagination reads page/limit query parameters with defaults.
func parsePagination(r *http.Request, defaultLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
