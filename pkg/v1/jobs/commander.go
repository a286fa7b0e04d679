// Package jobs defines the queue job contract and publishes jobs.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Commander sends job commands.
type Commander struct {
	sender Sender
}

// NewCommander returns new Commander using provided sender for sending messages.
func NewCommander(sender Sender) Commander {
	return Commander{
		sender: sender,
	}
}

// SendCommand sends provided job command.
func (c Commander) SendCommand(ctx context.Context, cmd Command) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal job command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

// SendSyncCommand sends catalog sync job for provided shop.
func (c Commander) SendSyncCommand(ctx context.Context, shopID int, mode string, itemID string) error {
	return c.SendCommand(ctx, Command{
		ShopID:  shopID,
		Type:    TypeSync,
		Attempt: 1,
		Mode:    mode,
		ItemID:  itemID,
	})
}

// SendFeedCommand sends feed generation job for provided shop.
func (c Commander) SendFeedCommand(ctx context.Context, shopID int) error {
	return c.SendCommand(ctx, Command{
		ShopID:  shopID,
		Type:    TypeFeedGeneration,
		Attempt: 1,
	})
}

// SendReprocessCommand sends attribute reprocessing job for provided shop.
func (c Commander) SendReprocessCommand(
	ctx context.Context,
	shopID int,
	changedFields []string,
	overridesToClear []string,
) error {
	return c.SendCommand(ctx, Command{
		ShopID:           shopID,
		Type:             TypeReprocess,
		Attempt:          1,
		ChangedFields:    changedFields,
		OverridesToClear: overridesToClear,
	})
}
