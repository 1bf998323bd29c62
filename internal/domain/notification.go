package domain

type NotificationEvent string

const (
	EventConfirm  NotificationEvent = "confirm"
	EventResetPIN NotificationEvent = "reset"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Argument keys carried by notifications.
const (
	ArgReservationID = "reservation_id"
	ArgMachineID     = "machine_id"
	ArgPIN           = "pin"
)

type NotificationArgs map[string]any
