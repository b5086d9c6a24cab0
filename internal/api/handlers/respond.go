package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/folioforge/engine/pkg/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates an error into the response envelope. 5xx detail is
// logged server-side only; the client sees a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := types.StatusOf(err)
	if status >= 500 {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeInvalid(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, types.APIResponse{
		Success: false,
		Error:   &types.APIError{Code: string(appErr.CodeInvalid), Message: msg},
	})
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the 400 itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeInvalid(w, "invalid json")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		details := map[string]any{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		writeJSON(w, http.StatusBadRequest, types.APIResponse{
			Success: false,
			Error:   &types.APIError{Code: string(appErr.CodeInvalid), Message: "validation failed", Details: details},
		})
		return false
	}
	return true
}
