package models

type ApiResponse struct {
	Data    interface{} `json:"data"`
	Status  int         `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Data:    data,
		Status:  200,
		Message: message,
	}
}

func ErrorResponse(message string, err error) ApiResponse {
	res := ApiResponse{
		Data:    nil,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
