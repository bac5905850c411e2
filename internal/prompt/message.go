package prompt

// Role tags a message in an exchange.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single role-tagged entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Exchange is the ordered system/user pair returned to the host.
type Exchange struct {
	System Message
	User   Message
}

// Messages returns the exchange in order.
func (e Exchange) Messages() []Message {
	return []Message{e.System, e.User}
}
