package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wasmerio/enumset"
	"github.com/wasmerio/enumset/codec"
)

// RedisStore saves and loads sets of T under Redis string keys, encoded
// with a fixed codec.
type RedisStore[T enumset.EnumType[T, R], R enumset.Word[R]] struct {
	client *redis.Client
	codec  codec.Codec[T, R]
}

// NewRedisStore creates a store on the given client. A nil client falls
// back to the package-wide client set up by MakeRedisClient.
func NewRedisStore[T enumset.EnumType[T, R], R enumset.Word[R]](client *redis.Client, c codec.Codec[T, R]) *RedisStore[T, R] {
	if client == nil {
		client = GetRedisClient()
	}
	return &RedisStore[T, R]{client: client, codec: c}
}

// Save encodes the set and writes it at _key_.
func (st *RedisStore[T, R]) Save(ctx context.Context, key string, s enumset.Set[T, R]) error {
	data, err := st.codec.Encode(s)
	if err != nil {
		return err
	}
	if err := st.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("enumset: could not save set at key %s: %v", key, err)
	}
	return nil
}

// Load reads the value at _key_ and decodes it into a set.
func (st *RedisStore[T, R]) Load(ctx context.Context, key string) (enumset.Set[T, R], error) {
	data, err := st.client.Get(ctx, key).Bytes()
	if err != nil {
		return enumset.Set[T, R]{}, fmt.Errorf("enumset: could not load set at key %s: %v", key, err)
	}
	return st.codec.Decode(data)
}

// Delete removes the set stored at _key_.
func (st *RedisStore[T, R]) Delete(ctx context.Context, key string) error {
	if err := st.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("enumset: could not delete set at key %s: %v", key, err)
	}
	return nil
}
