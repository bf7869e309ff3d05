package entity

// Payload is the notification content handed to the push gateway. Data
// values must be strings; FCM rejects anything else.
type Payload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Empty reports whether the payload carries neither a title nor a body.
func (p Payload) Empty() bool {
	return p.Title == "" && p.Body == ""
}
