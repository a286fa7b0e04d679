package blobstore

import "errors"

// ErrStatusNotOK is returned when the blob storage response had an unexpected status.
var ErrStatusNotOK = errors.New("response status is not OK")
