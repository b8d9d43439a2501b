package models

// PredictRequest is the POST /predict body. Days is a pointer so an explicit
// 0 is rejected rather than silently replaced by the default.
type PredictRequest struct {
	Symbol string `json:"symbol" validate:"required"`
	Days   *int   `json:"days" validate:"omitempty,gte=1,lte=30"`
}

// Horizon returns the requested forecast horizon, defaulting to 7 days.
func (r *PredictRequest) Horizon() int {
	if r.Days == nil {
		return 7
	}
	return *r.Days
}
