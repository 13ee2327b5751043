package apimodels

type Response struct {
	Status  string      `json:"status"`            // success or fail
	Message string      `json:"message,omitempty"` // human readable outcome
	Data    interface{} `json:"data,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessage(message string) Response {
	return Response{
		Status:  "success",
		Message: message,
	}
}
