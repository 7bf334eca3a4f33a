package openmeteo

import "errors"

// ErrNetwork marks transport failures and non-2xx responses from the
// Open-Meteo APIs.
var ErrNetwork = errors.New("open-meteo request failed")

// ErrMalformedResponse marks response bodies that fail to decode or are
// missing blocks the request asked for.
var ErrMalformedResponse = errors.New("open-meteo returned malformed response")
