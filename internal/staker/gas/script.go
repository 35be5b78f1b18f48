package gas

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

const (
	OpCreate byte = 0xc1
	OpCall   byte = 0xc2

	// DefaultVMVersion is the contract VM version pushed by current wallets.
	DefaultVMVersion = 4

	maxScriptNumLen = 8
)

// IsContractScript reports whether script ends in a contract opcode.
func IsContractScript(script []byte) bool {
	if len(script) == 0 {
		return false
	}
	last := script[len(script)-1]
	return last == OpCreate || last == OpCall
}

// DecodeOutput parses a contract output script:
//
//	<version> <gas limit> <gas price> <payload> OP_CREATE
//	<version> <gas limit> <gas price> <payload> <contract> OP_CALL
func DecodeOutput(index uint32, script []byte) (model.GasMeteredOutput, error) {
	var pushes [][]byte
	var op byte
	tok := txscript.MakeScriptTokenizer(0, script)
	for tok.Next() {
		if op != 0 {
			return model.GasMeteredOutput{}, fmt.Errorf("%w: data after contract opcode", ErrMalformedContractOutput)
		}
		switch o := tok.Opcode(); {
		case o == OpCreate || o == OpCall:
			op = o
		case o == txscript.OP_0:
			pushes = append(pushes, nil)
		case o == txscript.OP_1NEGATE:
			pushes = append(pushes, []byte{0x81})
		case txscript.IsSmallInt(o):
			pushes = append(pushes, []byte{byte(txscript.AsSmallInt(o))})
		case o <= txscript.OP_PUSHDATA4:
			pushes = append(pushes, tok.Data())
		default:
			return model.GasMeteredOutput{}, fmt.Errorf("%w: unexpected opcode 0x%02x", ErrMalformedContractOutput, o)
		}
	}
	if err := tok.Err(); err != nil {
		return model.GasMeteredOutput{}, fmt.Errorf("%w: %w", ErrMalformedContractOutput, err)
	}

	out := model.GasMeteredOutput{Index: index}
	switch {
	case op == OpCreate && len(pushes) == 4:
		out.Kind = model.OutputDeploy
	case op == OpCall && len(pushes) == 5:
		out.Kind = model.OutputInvoke
		if len(pushes[4]) != len(out.Contract) {
			return model.GasMeteredOutput{}, fmt.Errorf("%w: contract address length %d", ErrMalformedContractOutput, len(pushes[4]))
		}
		copy(out.Contract[:], pushes[4])
	default:
		return model.GasMeteredOutput{}, fmt.Errorf("%w: %d pushes before opcode 0x%02x", ErrMalformedContractOutput, len(pushes), op)
	}

	num := func(i int, what string) (int64, error) {
		v, err := decodeScriptNum(pushes[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrMalformedContractOutput, what, err)
		}
		return v, nil
	}

	var err error
	if out.Version, err = num(0, "version"); err != nil {
		return model.GasMeteredOutput{}, err
	}
	limit, err := num(1, "gas limit")
	if err != nil {
		return model.GasMeteredOutput{}, err
	}
	price, err := num(2, "gas price")
	if err != nil {
		return model.GasMeteredOutput{}, err
	}
	if limit <= 0 || price < 0 {
		return model.GasMeteredOutput{}, fmt.Errorf("%w: gas limit %d price %d", ErrMalformedContractOutput, limit, price)
	}
	out.GasLimit, out.GasPrice = uint64(limit), uint64(price)
	if len(pushes[3]) > 0 {
		out.Payload = append([]byte(nil), pushes[3]...)
	}
	return out, nil
}

// EncodeOutput builds the script for a contract output.
func EncodeOutput(out model.GasMeteredOutput) ([]byte, error) {
	if out.GasLimit > math.MaxInt64 || out.GasPrice > math.MaxInt64 {
		return nil, fmt.Errorf("gas limit %d or price %d out of range", out.GasLimit, out.GasPrice)
	}
	b := txscript.NewScriptBuilder().
		AddInt64(out.Version).
		AddInt64(int64(out.GasLimit)).
		AddInt64(int64(out.GasPrice)).
		AddData(out.Payload)
	switch out.Kind {
	case model.OutputDeploy:
		b.AddOp(OpCreate)
	case model.OutputInvoke:
		b.AddData(out.Contract[:]).AddOp(OpCall)
	default:
		return nil, fmt.Errorf("unknown output kind %s", out.Kind)
	}
	return b.Script()
}

// decodeScriptNum reads a little-endian sign-magnitude script number.
func decodeScriptNum(b []byte) (int64, error) {
	if len(b) > maxScriptNumLen {
		return 0, fmt.Errorf("number is %d bytes, max %d", len(b), maxScriptNumLen)
	}
	if len(b) == 0 {
		return 0, nil
	}
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * i)
	}
	last := b[len(b)-1]
	if last&0x80 == 0 {
		return int64(v), nil
	}
	v &^= uint64(0x80) << (8 * (len(b) - 1))
	return -int64(v), nil
}
