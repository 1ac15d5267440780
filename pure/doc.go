// Package pure provides memoization utilities for pure functions.
//
// Tableize is a tool that forces the developer to ask:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family memoizes calls by their input values. Inputs must be
// comparable or implement fmt.Stringer; anything else panics on first use
// with the trie backend.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: typed memoizers for common arities.
//   - Trie-based bounded table with dual-map rotation (default backend).
//   - Ristretto-backed bounded table keyed by xxhash digests (WithRistretto),
//     released by closing its Scope.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package pure
