package template

import (
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// P2PKHScript pays to the HASH160 of a public key.
func P2PKHScript(id model.KeyID) []byte {
	script, _ := txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(id[:]).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	return script
}

// P2PKScript pays to a public key directly.
func P2PKScript(pubKey []byte) []byte {
	script, _ := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	return script
}

func coinbaseScript(height uint64) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(int64(height)).
		AddOp(txscript.OP_0).
		Script()
}
