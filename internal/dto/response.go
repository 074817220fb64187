package dto

// Response is the envelope every endpoint returns:
// {success, message?, data?, error?}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Error: message}
}

// FailData is used when a failure still carries a payload, e.g. the
// existing timestamp on a double acknowledge.
func FailData(message string, data interface{}) Response {
	return Response{Success: false, Error: message, Data: data}
}
