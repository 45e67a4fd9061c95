package tjbuilding

// Response is the JSON envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a user-facing error message.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}
