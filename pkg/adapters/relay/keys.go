package relay

import (
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// DecodeKey turns a user-supplied private key, either bech32 "nsec" form
// or raw hex, into the hex secret key and its derived public key. A
// malformed key fails here, at first use, not at configuration time.
func DecodeKey(encoded string) (sk, pub string, err error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "nsec") {
		prefix, value, err := nip19.Decode(encoded)
		if err != nil {
			return "", "", fmt.Errorf("failed to decode private key: %w", err)
		}
		if prefix != "nsec" {
			return "", "", fmt.Errorf("unexpected key prefix %q, want nsec", prefix)
		}
		sk = value.(string)
	} else {
		sk = encoded
	}

	pub, err = nostr.GetPublicKey(sk)
	if err != nil {
		return "", "", fmt.Errorf("failed to derive public key: %w", err)
	}
	return sk, pub, nil
}
