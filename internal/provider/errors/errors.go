// Package errors defines sentinel errors shared by the provider
// protocol adapters.
package errors

import "errors"

var (
	// Local validation errors, detected before any network call.
	ErrEndpointNotSet        = errors.New("endpoint URL is not set")
	ErrEndpointNotHTTPS      = errors.New("endpoint URL is not https")
	ErrHostnameNotSet        = errors.New("hostname is not set")
	ErrHostnameNotValid      = errors.New("hostname is not valid")
	ErrUsernameNotSet        = errors.New("username is not set")
	ErrPasswordNotSet        = errors.New("password is not set")
	ErrTokenNotSet           = errors.New("token is not set")
	ErrMethodNotValid        = errors.New("HTTP method is not valid")
	ErrAutoDetectUnsupported = errors.New("provider cannot detect the address itself")

	// Protocol level errors.
	ErrAuth                 = errors.New("bad authentication")
	ErrHTTPStatusNotValid   = errors.New("HTTP status is not valid")
	ErrUnknownResponse      = errors.New("unknown response received")
	ErrUnmarshalResponse    = errors.New("cannot unmarshal response")
	ErrUnsuccessful         = errors.New("API response is unsuccessful")
	ErrZoneNotFound         = errors.New("no unique zone found")
	ErrResultsCountReceived = errors.New("wrong number of results received")
)
