package asset

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Registry is a thread-safe lookup of known assets by identity.
type Registry struct {
	mu     sync.RWMutex
	assets map[AssetID]*Asset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		assets: make(map[AssetID]*Asset),
	}
}

// Register adds an asset to the registry, replacing any previous entry.
func (r *Registry) Register(a *Asset) {
	if a == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[a.ID()] = a
}

// Get looks up an asset by its ID.
func (r *Registry) Get(id AssetID) (*Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	return a, ok
}

// GetToken looks up an ERC20 token by chain and address.
func (r *Registry) GetToken(chainID uint64, addr common.Address) (*Asset, bool) {
	return r.Get(NewTokenAssetID(chainID, addr))
}

// GetNative looks up the native coin for a chain.
func (r *Registry) GetNative(chainID uint64) (*Asset, bool) {
	return r.Get(NewNativeAssetID(chainID))
}

// defaultRegistry holds the well-known assets, built once.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns a registry pre-populated with well-known assets.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, a := range wellKnown() {
			defaultRegistry.Register(a)
		}
	})
	return defaultRegistry
}
