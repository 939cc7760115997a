// file: services/neynar_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUpstream marks failures of the Neynar profile API; controllers map it
// to 502.
var ErrUpstream = fmt.Errorf("upstream error")

const neynarCacheTTL = 5 * time.Minute

// NeynarUser is the slice of a Farcaster profile this service exposes.
type NeynarUser struct {
	Fid         uint64 `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

// NeynarClient talks to the Neynar social-graph API. Profile lookups are
// cached in Redis per fid; search results are not cached.
type NeynarClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	rdb     *redis.Client
}

func NewNeynarClient(apiKey, baseURL string, rdb *redis.Client) *NeynarClient {
	return &NeynarClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		rdb:     rdb,
	}
}

// UserByFid fetches a single profile, preferring the cache.
func (n *NeynarClient) UserByFid(ctx context.Context, fid uint64) (*NeynarUser, error) {
	users, err := n.UsersByFids(ctx, []uint64{fid})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: fid %d", ErrNotFound, fid)
	}
	return &users[0], nil
}

// UsersByFids resolves profiles for a batch of fids. Cached profiles are
// served from Redis; only the misses hit the API.
func (n *NeynarClient) UsersByFids(ctx context.Context, fids []uint64) ([]NeynarUser, error) {
	byFid := make(map[uint64]NeynarUser, len(fids))
	var misses []uint64

	for _, fid := range fids {
		cached, err := n.rdb.Get(ctx, neynarUserKey(fid)).Result()
		if err == nil {
			var u NeynarUser
			if json.Unmarshal([]byte(cached), &u) == nil {
				byFid[fid] = u
				continue
			}
		}
		misses = append(misses, fid)
	}

	if len(misses) > 0 {
		fetched, err := n.fetchUsers(ctx, misses)
		if err != nil {
			return nil, err
		}
		for _, u := range fetched {
			byFid[u.Fid] = u
			if data, err := json.Marshal(u); err == nil {
				n.rdb.Set(ctx, neynarUserKey(u.Fid), data, neynarCacheTTL)
			}
		}
	}

	// Preserve request order; unknown fids are simply absent.
	users := make([]NeynarUser, 0, len(fids))
	for _, fid := range fids {
		if u, ok := byFid[fid]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// SearchUsers runs a username/display-name search against the API.
func (n *NeynarClient) SearchUsers(ctx context.Context, query string, limit int) ([]NeynarUser, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/v2/farcaster/user/search?q=%s&limit=%d",
		n.baseURL, url.QueryEscape(query), limit)

	var payload struct {
		Result struct {
			Users []NeynarUser `json:"users"`
		} `json:"result"`
	}
	if err := n.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Result.Users, nil
}

// SignerKeys returns the ed25519 signer public keys registered for a fid,
// as hex strings. Sign-in verification matches the key a client signs with
// against this set, so a key the account never registered cannot authenticate
// as it. Cached like profiles.
func (n *NeynarClient) SignerKeys(ctx context.Context, fid uint64) ([]string, error) {
	cached, err := n.rdb.Get(ctx, neynarSignersKey(fid)).Result()
	if err == nil {
		var keys []string
		if json.Unmarshal([]byte(cached), &keys) == nil {
			return keys, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/farcaster/signers?fid=%d", n.baseURL, fid)
	var payload struct {
		Signers []struct {
			PublicKey string `json:"public_key"`
		} `json:"signers"`
	}
	if err := n.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(payload.Signers))
	for _, s := range payload.Signers {
		keys = append(keys, s.PublicKey)
	}
	if data, err := json.Marshal(keys); err == nil {
		n.rdb.Set(ctx, neynarSignersKey(fid), data, neynarCacheTTL)
	}
	return keys, nil
}

func (n *NeynarClient) fetchUsers(ctx context.Context, fids []uint64) ([]NeynarUser, error) {
	parts := make([]string, len(fids))
	for i, fid := range fids {
		parts[i] = strconv.FormatUint(fid, 10)
	}
	endpoint := fmt.Sprintf("%s/v2/farcaster/user/bulk?fids=%s",
		n.baseURL, strings.Join(parts, ","))

	var payload struct {
		Users []NeynarUser `json:"users"`
	}
	if err := n.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

func (n *NeynarClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("x-api-key", n.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: neynar returned %d", ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

func neynarUserKey(fid uint64) string {
	return "neynar:user:" + strconv.FormatUint(fid, 10)
}

func neynarSignersKey(fid uint64) string {
	return "neynar:signers:" + strconv.FormatUint(fid, 10)
}
