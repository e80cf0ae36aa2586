package utils

import "time"

const (
	// RegistrationSessionTTL bounds how long an abandoned onboarding session
	// lingers before Redis reaps it.
	RegistrationSessionTTL = 30 * time.Minute

	// AuthTokenDuration is the lifetime of tokens minted at registration.
	AuthTokenDuration = 72 * time.Hour

	// DiscoveryCacheTTL bounds how long a cached search result is served.
	DiscoveryCacheTTL = 5 * time.Minute
)
