package notify

// CardField is one labelled value on a card
type CardField struct {
	Name   string
	Value  string
	Inline bool
}

// Card is a platform-neutral rich message
type Card struct {
	Title       string
	Description string
	Color       int
	Fields      []CardField
}

// NotifyUserInput contains parameters for messaging a user directly
type NotifyUserInput struct {
	// UserID is the Discord user ID to message
	UserID string

	// Content is plain message text; may be empty if Card is set
	Content string

	// Card is an optional rich card
	Card *Card
}

// NotifyChannelInput contains parameters for messaging a channel
type NotifyChannelInput struct {
	// ChannelID is the Discord channel ID to message
	ChannelID string

	// Content is plain message text; may be empty if Card is set
	Content string

	// Card is an optional rich card
	Card *Card
}
