package admanagerdomain

import (
	"fmt"
)

// ErrorResponse é o corpo de erro padrão das APIs Google
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ad manager api error %d (%s): %s", e.Code, e.Status, e.Message)
}

func (e *APIError) IsAuthError() bool {
	return e.Code == 401 || e.Code == 403
}
