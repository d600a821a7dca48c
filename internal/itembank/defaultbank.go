package itembank

import (
	_ "embed"
	"fmt"
)

//go:embed banks/spanish.json
var defaultBankData []byte

// DefaultPool returns a pool built from the bundled Spanish starter
// bank, so the app works out of the box without a bank file.
func DefaultPool() (*Pool, error) {
	bank, err := ParseBank(defaultBankData)
	if err != nil {
		return nil, fmt.Errorf("bundled bank: %w", err)
	}
	return NewPool(bank.Items...)
}
