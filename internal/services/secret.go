package services

import "crypto/subtle"

// secretMatches compares the provided admin secret against the
// configured one in constant time. An empty configured secret never
// matches, so a missing ADMIN_SECRET cannot leave the admin surface
// open.
func secretMatches(configured, provided string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) == 1
}
