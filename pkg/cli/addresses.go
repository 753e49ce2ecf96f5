package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
)

// LoadAddresses reads one wallet address per line from path. Lines are
// trimmed and anything not starting with 0x is skipped. File order and
// duplicates are preserved.
func LoadAddresses(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}

	var addresses []string
	for _, line := range strings.Split(string(content), "\n") {
		if addr := strings.TrimSpace(line); utils.HasAddressPrefix(addr) {
			addresses = append(addresses, addr)
		}
	}
	return addresses, nil
}
