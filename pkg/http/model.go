package http

// FailureBody is the error payload shared by every endpoint: a success flag
// set to false plus a human-readable message.
type FailureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthBody is the static liveness payload.
type HealthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
