package ports

import (
	"context"

	"github.com/stpnv0/LaundryLocker/internal/domain"
)

type Notifier interface {
	Send(ctx context.Context, event domain.NotificationEvent, destination string, args domain.NotificationArgs) error
}
