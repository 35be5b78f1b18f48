package kernel

import (
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// Hash computes the kernel hash of an output at a timestamp.
func Hash(modifier model.StakeModifier, out model.UnspentOutput, timestamp uint32) chainhash.Hash {
	var buf [chainhash.HashSize + 4 + chainhash.HashSize + 4 + 4]byte
	n := copy(buf[:], modifier[:])
	binary.LittleEndian.PutUint32(buf[n:], out.OriginTime)
	n += 4
	n += copy(buf[n:], out.OutPoint.Hash[:])
	binary.LittleEndian.PutUint32(buf[n:], out.OutPoint.Index)
	n += 4
	binary.LittleEndian.PutUint32(buf[n:], timestamp)
	return chainhash.DoubleHashH(buf[:])
}

// MeetsTarget reports whether hash/value < target.
func MeetsTarget(hash chainhash.Hash, value int64, target *big.Int) bool {
	if value <= 0 {
		return false
	}
	weighted := new(big.Int).Div(blockchain.HashToBig(&hash), big.NewInt(value))
	return weighted.Cmp(target) < 0
}

// NextModifier derives the modifier for the block that carries proof.
func NextModifier(current model.StakeModifier, proof model.KernelProof, header *wire.BlockHeader) model.StakeModifier {
	var buf [chainhash.HashSize + 4 + chainhash.HashSize + chainhash.HashSize + 4]byte
	n := copy(buf[:], proof.Output.OutPoint.Hash[:])
	binary.LittleEndian.PutUint32(buf[n:], proof.Output.OutPoint.Index)
	n += 4
	n += copy(buf[n:], current[:])
	n += copy(buf[n:], header.PrevBlock[:])
	binary.LittleEndian.PutUint32(buf[n:], uint32(header.Timestamp.Unix()))
	return chainhash.DoubleHashH(buf[:])
}
