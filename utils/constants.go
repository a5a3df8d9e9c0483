// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlugCachePrefix keys the professional-by-slug lookup cache used by the
// public booking page.
const SlugCachePrefix = "profSlug:"

// SlugCacheTTL bounds staleness of the public profile cache.
const SlugCacheTTL = 5 * time.Minute

// BookingSessionPrefix keys booking-wizard sessions in Redis.
const BookingSessionPrefix = "bookingSession:"

// BookingSessionTTL is how long an abandoned wizard survives.
const BookingSessionTTL = 30 * time.Minute

// MaintenanceModeKey is the Redis flag the maintenance middleware checks.
const MaintenanceModeKey = "maintenance_mode"
