package fetchers

// AuthenticationError indicates that SILO rejected the supplied credentials.
// The service signals this either with a 401 status or with an error notice
// in an otherwise successful response body.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "SILO authentication failed - check username and password"
}
