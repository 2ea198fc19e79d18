package messenger

type RecipientKind int

const (
	RecipientNone RecipientKind = iota
	RecipientUser
	RecipientConversation
)

// Recipient addresses either a single user or a conversation.
type Recipient struct {
	kind         RecipientKind
	user         *User
	conversation *Conversation
}

func ToUser(u *User) Recipient {
	if u == nil {
		return Recipient{}
	}
	return Recipient{kind: RecipientUser, user: u}
}

func ToConversation(c *Conversation) Recipient {
	if c == nil {
		return Recipient{}
	}
	return Recipient{kind: RecipientConversation, conversation: c}
}

func (r Recipient) Kind() RecipientKind { return r.kind }

func (r Recipient) User() *User { return r.user }

func (r Recipient) Conversation() *Conversation { return r.conversation }
