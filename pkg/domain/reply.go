package domain

// Button is one available next action offered to the user.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Reply is the structured response handed to the delivery channel:
// display text plus the ordered set of actions valid next.
type Reply struct {
	Text    string   `json:"text"`
	Buttons []Button `json:"buttons"`
}
