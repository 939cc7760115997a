// file: services/auth_service.go
package services

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrBadSignature covers every way a sign-in attempt can fail verification.
var ErrBadSignature = errors.New("signature verification failed")

const nonceTTL = 10 * time.Minute

// SignerKeyResolver looks up the signer public keys registered on-chain for
// an account. NeynarClient implements it; tests inject fixed key sets.
type SignerKeyResolver interface {
	SignerKeys(ctx context.Context, fid uint64) ([]string, error)
}

// IssueNonce generates a single-use sign-in nonce and records it in Redis.
// The client embeds the nonce in the message it signs.
func IssueNonce(ctx context.Context, rdb *redis.Client) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	nonce := hex.EncodeToString(buf)
	if err := rdb.Set(ctx, nonceKey(nonce), "1", nonceTTL).Err(); err != nil {
		return "", err
	}
	return nonce, nil
}

// VerifySignIn checks a signed sign-in message against the account being
// claimed: the nonce must be one we issued and not yet consumed, and the
// signed claim must bind to the fid (see VerifyClaim). The nonce is burned
// whether or not the rest checks out, so a failed attempt cannot be retried
// against the same nonce.
func VerifySignIn(ctx context.Context, rdb *redis.Client, resolver SignerKeyResolver, fid uint64, message, nonce, signatureHex, publicKeyHex string) error {
	if message == "" || nonce == "" || signatureHex == "" || publicKeyHex == "" {
		return fmt.Errorf("%w: missing field", ErrValidation)
	}

	if err := rdb.GetDel(ctx, nonceKey(nonce)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: unknown or expired nonce", ErrBadSignature)
		}
		return err
	}

	signerKeys, err := resolver.SignerKeys(ctx, fid)
	if err != nil {
		return err
	}

	return VerifyClaim(fid, message, nonce, signatureHex, publicKeyHex, signerKeys)
}

// VerifyClaim is the pure half of sign-in verification. The supplied public
// key must be one of the fid's registered signer keys, the message must name
// the fid being claimed and contain the nonce, and the ed25519 signature must
// verify. A signature from a key the account never registered proves nothing
// about the account, however valid it is on its own.
func VerifyClaim(fid uint64, message, nonce, signatureHex, publicKeyHex string, signerKeys []string) error {
	if !strings.Contains(message, nonce) {
		return fmt.Errorf("%w: message does not contain nonce", ErrBadSignature)
	}
	if !strings.Contains(message, FidResource(fid)) {
		return fmt.Errorf("%w: message does not name fid %d", ErrBadSignature, fid)
	}

	registered := false
	for _, key := range signerKeys {
		if normalizeKey(key) == normalizeKey(publicKeyHex) {
			registered = true
			break
		}
	}
	if !registered {
		return fmt.Errorf("%w: key is not a registered signer for fid %d", ErrBadSignature, fid)
	}

	pub, err := hex.DecodeString(normalizeKey(publicKeyHex))
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: malformed public key", ErrBadSignature)
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(signatureHex, "0x"))
	if err != nil || len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: malformed signature", ErrBadSignature)
	}

	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		return ErrBadSignature
	}
	return nil
}

// FidResource is the URI a sign-in message must carry to name the account it
// claims.
func FidResource(fid uint64) string {
	return "farcaster://fid/" + strconv.FormatUint(fid, 10)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, "0x"))
}

func nonceKey(nonce string) string {
	return "signin:nonce:" + nonce
}
