package repository

import "time"

type GetOptions struct {
	Key string
}

type GetManyOptions struct {
	Keys []string
}

type SaveOptions struct {
	Key    string
	Vector []float32
	TTL    time.Duration
}

// SaveManyOptions saves Vectors[i] under Keys[i].
type SaveManyOptions struct {
	Keys    []string
	Vectors [][]float32
	TTL     time.Duration
}
