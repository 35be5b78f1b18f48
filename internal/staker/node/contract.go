package node

import (
	"context"
	"encoding/hex"
	"fmt"
)

type callResult struct {
	ExecutionResult struct {
		Excepted string `json:"excepted"`
		Output   string `json:"output"`
	} `json:"executionResult"`
}

// CallContract runs a read-only call against a contract at the tip and returns its output.
func (c *Client) CallContract(ctx context.Context, address string, data []byte) ([]byte, error) {
	var res callResult
	if err := c.call(ctx, "callcontract", &res, address, hex.EncodeToString(data)); err != nil {
		return nil, err
	}
	if ex := res.ExecutionResult.Excepted; ex != "" && ex != "None" {
		return nil, fmt.Errorf("%w: %s", ErrContractFailed, ex)
	}
	out, err := hex.DecodeString(res.ExecutionResult.Output)
	if err != nil {
		return nil, fmt.Errorf("decode contract output: %w", err)
	}
	return out, nil
}
