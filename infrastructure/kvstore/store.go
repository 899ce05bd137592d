// Package kvstore implementa o armazenamento chave-valor onde o estado do painel é espelhado
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("chave não encontrada")

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany grava todas as entradas de forma atômica
	SetMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
