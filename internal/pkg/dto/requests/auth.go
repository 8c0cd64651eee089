package requests

// AuthHeader carries the bearer credential of the submitting user. An empty
// Authorization means the caller is anonymous.
type AuthHeader struct {
	Authorization string `json:"Authorization,omitempty"`
}
