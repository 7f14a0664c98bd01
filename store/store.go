// Package store is the JSON record store: named collections persisted as
// whole blobs under fixed string keys. Every mutation is read-modify-write of
// the full value; concurrent writers race with last-write-wins.
package store

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
)

// Fixed record keys.
const (
	KeyCart            = "cart"
	KeyUsers           = "users"
	KeyOrders          = "orders"
	KeyAddresses       = "addresses"
	KeyFavorites       = "favorites"
	KeyProfileData     = "profileData"
	KeyCurrentUser     = "currentUser"
	KeySessions        = "sessions"
	KeyPendingAction   = "pendingAction"
	KeyPendingCheckout = "pendingCheckout"
)

// Store loads and saves JSON-serializable records by key.
//
// Get decodes the stored blob into dest and reports whether it succeeded. An
// absent key or an undecodable blob leaves dest untouched and returns false;
// it never surfaces an error, so callers always proceed with an empty value.
//
// Set serializes value and overwrites the whole blob, then notifies any
// subscribers registered for the key.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	Subscribe(key string, fn func())
}

// decodeRecord unmarshals blob into dest all-or-nothing. json.Unmarshal fills
// a destination element by element before reporting a type error, so decoding
// goes through a fresh value first; dest is only written on full success.
func decodeRecord(blob []byte, dest interface{}) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &json.InvalidUnmarshalError{Type: reflect.TypeOf(dest)}
	}
	fresh := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(blob, fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

// notifier fans change notifications out to per-key subscribers. Drivers embed
// it and call publish after a successful write. This is the server-side analog
// of the "cartUpdated" event the header badge listens for.
type notifier struct {
	mu          sync.RWMutex
	subscribers map[string][]func()
}

func (n *notifier) subscribe(key string, fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subscribers == nil {
		n.subscribers = make(map[string][]func())
	}
	n.subscribers[key] = append(n.subscribers[key], fn)
}

func (n *notifier) publish(key string) {
	n.mu.RLock()
	fns := n.subscribers[key]
	n.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
