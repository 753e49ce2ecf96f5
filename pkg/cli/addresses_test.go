package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAddressFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "address.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAddresses(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "one per line",
			content:  "0xaaa\n0xbbb\n",
			expected: []string{"0xaaa", "0xbbb"},
		},
		{
			name:     "whitespace trimmed and crlf",
			content:  "  0xaaa  \r\n\t0xbbb\r\n",
			expected: []string{"0xaaa", "0xbbb"},
		},
		{
			name:     "non 0x lines skipped",
			content:  "# wallets\n0xaaa\nhello\n\n0Xccc\nxyz0x\n0xbbb",
			expected: []string{"0xaaa", "0xbbb"},
		},
		{
			name:     "duplicates preserved in order",
			content:  "0xbbb\n0xaaa\n0xbbb\n",
			expected: []string{"0xbbb", "0xaaa", "0xbbb"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: nil,
		},
		{
			name:     "no valid lines",
			content:  "foo\nbar\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addresses, err := LoadAddresses(writeAddressFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addresses)
		})
	}
}

func TestLoadAddressesMissingFile(t *testing.T) {
	_, err := LoadAddresses(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
