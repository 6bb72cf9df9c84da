package auth

import (
	"context"
	"homestay/shared/constant"
)

// TokenStore holds the single admin bearer token attached to outgoing backend requests.
type TokenStore interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, token string)
	Remove(ctx context.Context)
}

type tokenStore struct {
	storage Storage
}

func NewTokenStore(storage Storage) TokenStore {
	if storage == nil {
		storage = NoopStorage{}
	}

	return &tokenStore{storage: storage}
}

func (t *tokenStore) Get(ctx context.Context) string {
	token, _ := t.storage.Get(ctx, constant.StorageKeyAuthToken)

	return token
}

func (t *tokenStore) Set(ctx context.Context, token string) {
	t.storage.Set(ctx, constant.StorageKeyAuthToken, token)
}

func (t *tokenStore) Remove(ctx context.Context) {
	t.storage.Remove(ctx, constant.StorageKeyAuthToken)
}
