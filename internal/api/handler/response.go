package handler

// envelope is the canonical response shape shared by every endpoint:
// {success, message?, data?, count?, error?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func countOf(n int) *int {
	return &n
}
