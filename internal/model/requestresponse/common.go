package requestresponse

// ErrorResponse : тело ответа util.HandleError
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
