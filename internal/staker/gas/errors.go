package gas

import "errors"

var (
	// ErrGasPriceTooLow rejects a transaction paying less than the minimum gas price.
	ErrGasPriceTooLow = errors.New("gas price below minimum")
	// ErrExceedsBlockGasLimit is a consensus failure: no block can ever carry the transaction.
	ErrExceedsBlockGasLimit = errors.New("gas demand exceeds block gas limit")
	// ErrTxExceedsPolicyGasLimit defers a transaction under the local per-transaction cap.
	ErrTxExceedsPolicyGasLimit = errors.New("gas demand exceeds policy transaction limit")
	// ErrBlockGasBudgetExceeded defers a transaction that does not fit the remaining block budget.
	ErrBlockGasBudgetExceeded = errors.New("block gas budget exceeded")
	// ErrParentNotSelected defers a transaction spending a pooled transaction the template left out.
	ErrParentNotSelected = errors.New("spends a pooled transaction not selected before it")
	// ErrMalformedContractOutput marks a contract output script that does not decode.
	ErrMalformedContractOutput = errors.New("malformed contract output")
	// ErrInsufficientGasFee rejects a transaction whose fee cannot cover its gas limit at its price.
	ErrInsufficientGasFee = errors.New("fee below gas cost bound")
)
