package cli

import "errors"

var (
	// ErrFile means the address list could not be read
	ErrFile = errors.New("address file error")

	// ErrNetwork means the claim request failed below HTTP (DNS, refused, reset)
	ErrNetwork = errors.New("network error")

	// ErrTimeout means the claim did not settle within its budget
	ErrTimeout = errors.New("claim timed out")

	// ErrParse means the faucet answered with something that is not the
	// expected JSON object
	ErrParse = errors.New("invalid faucet response")

	// ErrNoSelection means input ended before a valid chain selection was made
	ErrNoSelection = errors.New("no chains selected")
)
