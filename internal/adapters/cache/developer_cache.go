package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dmaker/internal/core/services"

	"github.com/valkey-io/valkey-go"
)

const keyPrefix = "dmaker:developer:"

// DeveloperCache is a valkey-backed read-through cache of developer details
type DeveloperCache struct {
	client valkey.Client
	ttl    time.Duration
}

// Connect opens a valkey client for addr
func Connect(addr string) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{addr},
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to valkey at %s: %w", addr, err)
	}
	return client, nil
}

// NewDeveloperCache creates a detail cache with the given entry TTL
func NewDeveloperCache(client valkey.Client, ttl time.Duration) *DeveloperCache {
	return &DeveloperCache{client: client, ttl: ttl}
}

func key(memberID string) string {
	return keyPrefix + memberID
}

// Get implements services.DetailCache
func (c *DeveloperCache) Get(ctx context.Context, memberID string) (*services.DeveloperDetail, bool, error) {
	raw, err := c.client.Do(ctx, c.client.B().Get().Key(key(memberID)).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var detail services.DeveloperDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w", key(memberID), err)
	}
	return &detail, true, nil
}

// Set implements services.DetailCache
func (c *DeveloperCache) Set(ctx context.Context, detail *services.DeveloperDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	cmd := c.client.B().Set().
		Key(key(detail.MemberID)).
		Value(valkey.BinaryString(raw)).
		ExSeconds(int64(c.ttl / time.Second)).
		Build()
	return c.client.Do(ctx, cmd).Error()
}

// SetIfAbsent implements services.DetailCache with SET NX
func (c *DeveloperCache) SetIfAbsent(ctx context.Context, detail *services.DeveloperDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	cmd := c.client.B().Set().
		Key(key(detail.MemberID)).
		Value(valkey.BinaryString(raw)).
		Nx().
		ExSeconds(int64(c.ttl / time.Second)).
		Build()

	// a nil reply means the key already exists
	if err := c.client.Do(ctx, cmd).Error(); err != nil && !valkey.IsValkeyNil(err) {
		return err
	}
	return nil
}

// Delete implements services.DetailCache
func (c *DeveloperCache) Delete(ctx context.Context, memberID string) error {
	return c.client.Do(ctx, c.client.B().Del().Key(key(memberID)).Build()).Error()
}

// Ping checks the connection to valkey
func (c *DeveloperCache) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

// Close closes the underlying client
func (c *DeveloperCache) Close() {
	c.client.Close()
}
