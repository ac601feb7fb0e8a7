// File: utils/constants.go
package utils

import "time"

// SettingsCachePrefix is the prefix used for Redis settings snapshot keys.
const SettingsCachePrefix = "settings:"

// SettingsCacheTTL is the fallback time-to-live for settings snapshots.
const SettingsCacheTTL = 5 * time.Minute
