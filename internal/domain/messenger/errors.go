package messenger

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidMessage       = errors.New("invalid message")
	ErrMessageNotFound      = errors.New("message not found")
	ErrOutOfRange           = errors.New("history limit out of range")
)
