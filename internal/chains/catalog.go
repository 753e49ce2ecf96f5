package chains

import (
	"fmt"
	"strconv"
	"strings"
)

// Chain is a test network the faucet can drip on
type Chain struct {
	ID   int64  `json:"chainId"`
	Name string `json:"name"`
}

// String returns "Name (id)"
func (c Chain) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.ID)
}

// Catalog is the fixed list of supported networks, in menu order
var Catalog = []Chain{
	{ID: 11155111, Name: "Sepolia"},
	{ID: 421614, Name: "Arbitrum Sepolia"},
	{ID: 84532, Name: "Base Sepolia"},
	{ID: 43113, Name: "Avalanche Fuji"},
	{ID: 6342, Name: "MegaETH Testnet"},
}

// Lookup finds a catalog entry by chain ID
func Lookup(id int64) (Chain, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Chain{}, false
}

// NameOf returns the display name for a chain ID, falling back to "Chain <id>"
func NameOf(id int64) string {
	if c, ok := Lookup(id); ok {
		return c.Name
	}
	return fmt.Sprintf("Chain %d", id)
}

// ParseSelection turns operator input into a list of chains.
//
// "all" (any case) selects the whole catalog. Anything else is read as
// whitespace separated 1-based menu indices; tokens that are not integers or
// fall outside the menu are skipped. Order and duplicates are preserved, so
// "3 1 3" yields three entries.
func ParseSelection(input string) []Chain {
	input = strings.TrimSpace(input)
	if strings.ToLower(input) == "all" {
		selected := make([]Chain, len(Catalog))
		copy(selected, Catalog)
		return selected
	}

	var selected []Chain
	for _, token := range strings.Fields(input) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > len(Catalog) {
			continue
		}
		selected = append(selected, Catalog[n-1])
	}
	return selected
}
