// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries. Verified
// bearer tokens are remembered this long to spare the identity provider.
const AuthCacheTTL = 10 * time.Minute
