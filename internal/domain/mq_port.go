package domain

import "context"

type TransferPublisher interface {
	PublishTransfer(ctx context.Context, event TransferEvent) error
}
