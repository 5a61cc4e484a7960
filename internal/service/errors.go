package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchHTTP is returned when the content could not be downloaded from the origin.
	ErrFetchHTTP = errors.New("download content")
	// ErrFetchIO is returned when downloaded content could not be cached.
	// The content itself is returned alongside this error.
	ErrFetchIO = errors.New("cache content")

	// ErrPersistence wraps failures to write the subscribers snapshot.
	ErrPersistence = errors.New("persist subscribers")
	// ErrRegistryUnavailable is returned when the registry no longer accepts requests.
	ErrRegistryUnavailable = errors.New("subscribers registry unavailable")

	// ErrDelivery wraps transport failures while sending to a single chat.
	ErrDelivery = errors.New("deliver to chat")
	// ErrRecipientBlocked means the chat blocked the bot or removed it.
	ErrRecipientBlocked = fmt.Errorf("%w: recipient blocked the bot", ErrDelivery)

	ErrUnknownCommand = errors.New("unknown command")
)
