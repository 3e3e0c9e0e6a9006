package caja

import (
	"errors"
	"fmt"
	"strings"
)

// validateAmount rejects zero and negative movement amounts.
func validateAmount(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	return nil
}

// validateName rejects blank entity names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be blank")
	}
	return nil
}
