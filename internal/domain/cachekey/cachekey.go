// Package cachekey derives the cache key for every cacheable query shape.
// Derivation is a pure function of its inputs: two requests that would
// return the same rows always map to the same key, and requests with
// different filtering semantics never collide.
package cachekey

import "strconv"

const (
	globalFeedKey    = "threads:all"
	userFeedPrefix   = "threads:user:"
	profileKeyPrefix = "user:"
)

// GlobalFeed keys the recent-threads window for the whole system.
func GlobalFeed() string {
	return globalFeedKey
}

// UserFeed keys a per-author feed. The media-only listing is an independent
// entry, never derived from the unfiltered one.
func UserFeed(authorID int64, mediaOnly bool) string {
	suffix := ":all"
	if mediaOnly {
		suffix = ":media"
	}
	return userFeedPrefix + strconv.FormatInt(authorID, 10) + suffix
}

// Profile keys a user's public profile snapshot.
func Profile(userID int64) string {
	return profileKeyPrefix + strconv.FormatInt(userID, 10)
}
