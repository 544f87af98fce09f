package storage

import "errors"

var ErrNotFound = errors.New("not found")

// Store es la abstracción de estado persistido del cliente
// (el análogo del localStorage del front original).
// Claves y valores son strings; los llamadores serializan JSON si hace falta.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
