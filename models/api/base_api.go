package apimodels

// ErrorResponse is the uniform failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

func NewOk() OkResponse {
	return OkResponse{Ok: true}
}
