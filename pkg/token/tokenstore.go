package tokenstore

import "sync"

// in-memory jti revocation store; entries live until process restart,
// which is fine for 24h tokens on a single instance.
var (
	mu      sync.RWMutex
	revoked = map[string]struct{}{}
)

func RevokeToken(jti string) {
	if jti == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	revoked[jti] = struct{}{}
}

func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	mu.RLock()
	defer mu.RUnlock()
	_, ok := revoked[jti]
	return ok
}
