package pharmacist

import (
	"strings"

	"pharmacist/feature/pharmacist/models"
)

// NicknameCache memoizes trader display names. It lives for one run; trader
// identities are immutable for that duration so entries are never
// invalidated.
type NicknameCache struct {
	names map[string]string
}

// NewNicknameCache creates an empty cache.
func NewNicknameCache() *NicknameCache {
	return &NicknameCache{names: make(map[string]string)}
}

// Resolve returns a best-effort display name for a trader, or "" when no
// usable name exists. Resolution order: base.nickname, nickname, base.name,
// name, surname; the first non-blank candidate wins. It never fails on
// missing or malformed trader data.
func (c *NicknameCache) Resolve(traderID string, traders map[string]*models.Trader) string {
	if name, ok := c.names[traderID]; ok {
		return name
	}

	trader := traders[traderID]
	if trader == nil {
		return ""
	}

	var candidates []string
	if trader.Base != nil {
		candidates = append(candidates, trader.Base.Nickname)
	}
	candidates = append(candidates, trader.Nickname)
	if trader.Base != nil {
		candidates = append(candidates, trader.Base.Name)
	}
	candidates = append(candidates, trader.Name, trader.Surname)

	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			c.names[traderID] = candidate
			return candidate
		}
	}
	return ""
}
