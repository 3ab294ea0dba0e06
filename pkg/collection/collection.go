// Package collection provides small generic helpers for slices.
//
//	ids := collection.Unique(collection.Map(items, func(it models.CartItem) uint { return it.ProductID }))
//	byID := collection.KeyBy(products, func(p models.Product) uint { return p.ID })
//	total := collection.SumDecimal(lines, func(l CartLine) decimal.Decimal { return l.Amount })
package collection

import "github.com/shopspring/decimal"

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Unique returns s without duplicates, keeping first occurrences in order.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// KeyBy turns s into a map using the key produced by fn.
// If two elements produce the same key, the last one wins.
func KeyBy[T any, K comparable](s []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		out[fn(v)] = v
	}
	return out
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}

// SumDecimal adds up the amounts extracted by fn without float rounding.
func SumDecimal[T any](s []T, fn func(T) decimal.Decimal) decimal.Decimal {
	return Reduce(s, decimal.Zero, func(acc decimal.Decimal, v T) decimal.Decimal {
		return acc.Add(fn(v))
	})
}
