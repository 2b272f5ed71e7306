package asset

import "github.com/ethereum/go-ethereum/common"

// Well-known chain IDs.
const (
	ChainIDEthereum uint64 = 1
	ChainIDBase     uint64 = 8453
	ChainIDArbitrum uint64 = 42161
)

// Well-known mainnet assets.
var (
	ETH = NewAssetWithName(NewNativeAssetID(ChainIDEthereum), "ETH", "Ether", 18)

	WETH = NewAssetWithName(
		NewTokenAssetID(ChainIDEthereum, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")),
		"WETH", "Wrapped Ether", 18)

	USDC = NewAssetWithName(
		NewTokenAssetID(ChainIDEthereum, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")),
		"USDC", "USD Coin", 6)

	USDT = NewAssetWithName(
		NewTokenAssetID(ChainIDEthereum, common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")),
		"USDT", "Tether USD", 6)

	DAI = NewAssetWithName(
		NewTokenAssetID(ChainIDEthereum, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")),
		"DAI", "Dai Stablecoin", 18)

	WBTC = NewAssetWithName(
		NewTokenAssetID(ChainIDEthereum, common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599")),
		"WBTC", "Wrapped BTC", 8)
)

func wellKnown() []*Asset {
	return []*Asset{ETH, WETH, USDC, USDT, DAI, WBTC}
}
