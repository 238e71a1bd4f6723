package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// RestAction is the action every REST nonce is bound to.
const RestAction = "wp_rest"

const nonceLength = 10

// Nonces issues and verifies time-limited per-user request tokens.
// A nonce is valid for the tick it was created in and the following one,
// so its effective lifetime is between half and the full configured lifetime.
type Nonces struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewNonces creates a nonce issuer. Lifetimes under two seconds are raised to
// two seconds.
func NewNonces(secret string, lifetime time.Duration) *Nonces {
	if lifetime < 2*time.Second {
		lifetime = 2 * time.Second
	}
	return &Nonces{secret: []byte(secret), lifetime: lifetime, now: time.Now}
}

func (n *Nonces) tick() int64 {
	half := int64(n.lifetime/time.Second) / 2
	now := n.now().Unix()
	return (now + half - 1) / half
}

func (n *Nonces) sign(userID uint, tick int64) string {
	mac := hmac.New(sha256.New, n.secret)
	mac.Write([]byte(RestAction + "|" + strconv.FormatUint(uint64(userID), 10) + "|" + strconv.FormatInt(tick, 10)))
	return hex.EncodeToString(mac.Sum(nil))[:nonceLength]
}

// Create returns the nonce for userID in the current tick.
func (n *Nonces) Create(userID uint) string {
	return n.sign(userID, n.tick())
}

// Verify reports whether nonce was issued to userID in the current or previous tick.
func (n *Nonces) Verify(userID uint, nonce string) bool {
	if len(nonce) != nonceLength {
		return false
	}
	tick := n.tick()
	for _, t := range []int64{tick, tick - 1} {
		if hmac.Equal([]byte(nonce), []byte(n.sign(userID, t))) {
			return true
		}
	}
	return false
}
