package catalog

import (
	"errors"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform"
)

var (
	// ErrRateLimited is returned when the external API responded with 429 Too Many Requests.
	ErrRateLimited = errors.New("external api rate limited the request")
	// ErrInvalidCredentials is returned when the external API rejected the shop's credentials.
	ErrInvalidCredentials = platform.ErrInvalidCredentials
	// ErrStatusNotOK is returned when the external API response had an unexpected status.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
)
