package interfaces

import "errors"

// ErrStoreCorrupt is returned by request stores whose persisted state exists but cannot be decoded.
// A missing store is not corrupt; it loads as empty.
var ErrStoreCorrupt = errors.New("request store is corrupt")
