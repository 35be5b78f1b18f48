package template

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

var ErrUnsupportedScript = errors.New("unsupported stake script")

const txVersion = 2

// buildCoinbase returns the proof-of-stake coinbase: a height-committing input and one empty
// output.
func buildCoinbase(height uint64) (*wire.MsgTx, error) {
	script, err := coinbaseScript(height)
	if err != nil {
		return nil, fmt.Errorf("coinbase script: %w", err)
	}
	tx := wire.NewMsgTx(txVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&zeroHash, wire.MaxPrevOutIndex), script, nil))
	tx.AddTxOut(wire.NewTxOut(0, nil))
	return tx, nil
}

// buildCoinstake spends input into an empty marker output followed by payouts.
func buildCoinstake(input model.UnspentOutput, payouts []model.Payout) *wire.MsgTx {
	tx := wire.NewMsgTx(txVersion)
	op := input.OutPoint
	tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
	tx.AddTxOut(wire.NewTxOut(0, nil))
	for _, p := range payouts {
		tx.AddTxOut(wire.NewTxOut(p.Amount, p.Script))
	}
	return tx
}

// signInput fills the signature script of input idx, which spends prev.
func signInput(tx *wire.MsgTx, idx int, prev model.UnspentOutput, signer Signer) error {
	class := txscript.GetScriptClass(prev.PkScript)
	if class != txscript.PubKeyHashTy && class != txscript.PubKeyTy {
		return fmt.Errorf("%w: %s", ErrUnsupportedScript, class)
	}

	hash, err := txscript.CalcSignatureHash(prev.PkScript, txscript.SigHashAll, tx, idx)
	if err != nil {
		return fmt.Errorf("signature hash: %w", err)
	}
	der, err := signer.SignDER(prev.Owner, hash)
	if err != nil {
		return fmt.Errorf("sign input %d: %w", idx, err)
	}
	sig := append(der, byte(txscript.SigHashAll))

	b := txscript.NewScriptBuilder().AddData(sig)
	if class == txscript.PubKeyHashTy {
		pub, err := signer.PublicKey(prev.Owner)
		if err != nil {
			return fmt.Errorf("public key: %w", err)
		}
		b.AddData(pub.SerializeCompressed())
	}
	script, err := b.Script()
	if err != nil {
		return fmt.Errorf("signature script: %w", err)
	}
	tx.TxIn[idx].SignatureScript = script
	return nil
}

func isCoinstake(tx *wire.MsgTx) bool {
	return len(tx.TxIn) > 0 && len(tx.TxOut) >= 2 &&
		tx.TxOut[0].Value == 0 && len(tx.TxOut[0].PkScript) == 0
}
