package dto

// AccessResponse is the gate-scan result. The scanner UI shows Name on
// admission and Message while the cooldown still runs.
type AccessResponse struct {
	Access  bool   `json:"access"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}
