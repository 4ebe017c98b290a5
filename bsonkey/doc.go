// Package bsonkey provides a supplemental BSON serialization surface for
// Paillier counters and keys, for embedding one directly into a MongoDB
// document alongside other application state.
//
// The REQUIRED wire format for this system is the hex encoding in
// hexcodec.go (spec.md §4.8); this package is an additive convenience on
// top of it, not a replacement.
package bsonkey
