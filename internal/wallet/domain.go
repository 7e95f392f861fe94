// Package wallet relays account top-up deposits to the commerce backend.
package wallet

import "errors"

// MinDepositAmount is the smallest accepted deposit.
const MinDepositAmount = 50

// Deposit is a wallet top-up request for one account.
type Deposit struct {
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TransactionID string  `json:"transactionId"`
}

// Confirmation acknowledges a submitted deposit.
type Confirmation struct {
	Message string `json:"message"`
}

// ErrAmountTooSmall rejects deposits below MinDepositAmount.
var ErrAmountTooSmall = errors.New("wallet: minimum deposit amount is 50")
