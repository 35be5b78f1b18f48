package node

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

var (
	mainNetParams = withAddressIDs(chaincfg.MainNetParams, "yody-mainnet", 0x3a, 0x32, 0x80)
	testNetParams = withAddressIDs(chaincfg.TestNet3Params, "yody-testnet", 0x78, 0x6e, 0xef)
	regTestParams = withAddressIDs(chaincfg.RegressionNetParams, "yody-regtest", 0x78, 0x6e, 0xef)
)

func withAddressIDs(base chaincfg.Params, name string, pubKeyHash, scriptHash, privateKey byte) *chaincfg.Params {
	p := base
	p.Name = name
	p.PubKeyHashAddrID = pubKeyHash
	p.ScriptHashAddrID = scriptHash
	p.PrivateKeyID = privateKey
	return &p
}

// ChainParams returns the address parameters of a network.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		return mainNetParams, nil
	case model.Testnet:
		return testNetParams, nil
	case model.Regtest:
		return regTestParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
