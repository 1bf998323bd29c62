package notification

import "errors"

// ErrNotifierDisabled is returned when a notifier has no usable destination configured.
var ErrNotifierDisabled = errors.New("notifier disabled")
