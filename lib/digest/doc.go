// Package digest computes content digests of disk images.
//
// Files are streamed in fixed-size chunks so that hashing a multi-gigabyte
// image keeps memory flat. SHA-256 is the identity digest reported to
// clients; BLAKE3 is computed alongside it in the same pass.
package digest
