package models

const (
	CodeMethodNotAllowed = "method_not_allowed"
	CodeBadDate          = "bad_date"
	CodeNotArchived      = "rates_not_archived"
	CodeInternal         = "internal_error"
)

// BusinessError is the JSON body of every non-2xx archive API response.
type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BusinessError) Error() string { return e.Code + ": " + e.Message }

func BizError(code, msg string) *BusinessError { return &BusinessError{Code: code, Message: msg} }
