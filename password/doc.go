// Package password implements one-way salted password hashing and
// verification with Argon2id.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// The salt is drawn from crypto/rand on every call, so hashing the same
// plaintext twice yields different encoded values that both verify.
// Verification recomputes the digest from the embedded salt and parameters
// and compares in constant time.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Password policy (minimum
// length, presence) is enforced by the Engine before plaintext reaches it.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords; callers supply plaintext and receive hashes.
//   - Import any other authcore package.
//   - Log plaintext passwords or hash parameters at runtime.
package password
