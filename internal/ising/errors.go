package ising

import "errors"

var (
	// ErrUnknownInitMode indicates an initial-state token other than 'r' or 'u'.
	ErrUnknownInitMode = errors.New("ising: unknown init mode (want 'r' or 'u')")

	// ErrTooLarge indicates a lattice too large for exact enumeration.
	ErrTooLarge = errors.New("ising: lattice too large for exact enumeration")

	// ErrInfiniteBeta indicates an inverse temperature that enumeration cannot weight.
	ErrInfiniteBeta = errors.New("ising: exact enumeration requires finite beta")
)
