package ports

import "context"

type ClaimLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
