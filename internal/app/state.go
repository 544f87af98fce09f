// Package app contiene los controladores de las vistas: el estado local de
// cada feature y sus transiciones. Acá vive la disciplina común a todos:
// re-fetch después de cada mutación (nunca update optimista), submits
// deshabilitados mientras hay un request del mismo tipo en vuelo, y un
// contador de generación para que una respuesta tardía no pise estado de
// una carga más nueva.
package app

import "errors"

// LoadState es el ciclo de carga de una vista.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateError
)

// ErrPending señala un submit duplicado mientras el anterior sigue en vuelo.
// No hay claves de idempotencia en el transporte; la supresión es local.
var ErrPending = errors.New("operation already in progress")

// ErrWrongStep señala una transición de checkout pedida desde un paso que
// no la ofrece. El caller distingue así un no-op de una transición real.
var ErrWrongStep = errors.New("action not available in current step")
