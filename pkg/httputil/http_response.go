package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Response envelope used by every route: errors carry errorString,
// successes carry data. statusCode duplicates the HTTP status for clients
// that only look at the body.
type ErrorResponse struct {
	StatusCode  int    `json:"statusCode"`
	ErrorString string `json:"errorString"`
}

type DataResponse struct {
	StatusCode int `json:"statusCode"`
	Data       any `json:"data,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	sonic.ConfigFastest.NewEncoder(w).Encode(ErrorResponse{
		StatusCode:  statusCode,
		ErrorString: errorString,
	})
}

func WriteDataResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	sonic.ConfigDefault.NewEncoder(w).Encode(DataResponse{
		StatusCode: statusCode,
		Data:       data,
	})
}
