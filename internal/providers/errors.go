package providers

import "errors"

// ErrUnexpectedStatus indicates the content origin answered with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status")
