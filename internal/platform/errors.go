package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
var ErrAlreadyRunning = errors.New("sync already running for this shop")

// ErrShopNotFound is an error returned when shop doesn't exist in storage.
var ErrShopNotFound = errors.New("shop not found")

// ErrInvalidCredentials is an error returned when the external API rejected the shop's credentials.
var ErrInvalidCredentials = errors.New("external api rejected credentials")
