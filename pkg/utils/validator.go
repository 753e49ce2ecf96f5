package utils

import (
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
)

// HasAddressPrefix reports whether s looks like a wallet entry (starts with 0x)
func HasAddressPrefix(s string) bool {
	return strings.HasPrefix(s, "0x")
}

// IsEVMAddress reports whether s is a 20-byte hex address
func IsEVMAddress(s string) bool {
	return HasAddressPrefix(s) && common.IsHexAddress(s)
}

// InvalidAddresses returns the entries that are not 20-byte hex addresses,
// in input order
func InvalidAddresses(addresses []string) []string {
	var invalid []string
	for _, a := range addresses {
		if !IsEVMAddress(a) {
			invalid = append(invalid, a)
		}
	}
	return invalid
}

// ShortenAddress renders an address as "0x1234...abcd"
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// Sanitize drops control characters from text received from a remote
// server so it cannot move the cursor or recolor the terminal
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
