package credits

import "time"

// Credits represents a user's monthly export and interview credit balance.
type Credits struct {
	Plan     string    `json:"plan"`
	Limit    int       `json:"limit"`
	Used     int       `json:"used"`
	ResetsAt time.Time `json:"resetsAt"`
}
