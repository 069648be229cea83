package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// ErrDuplicateKey is returned when an insert hits a unique constraint
// (Postgres SQLSTATE 23505). Services translate it into a domain error.
var ErrDuplicateKey = errors.New("duplicate key")
