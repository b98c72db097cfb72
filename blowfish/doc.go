/*
Package blowfish implements the Blowfish block cipher with variable-length keys
of 1 to 72 bytes.

The cipher operates on 8-byte blocks split into two big-endian 32-bit halves.
A Cipher is derived once per key and is read-only afterwards, so it is safe
for concurrent use by multiple goroutines.

Blowfish has a 64-bit block and is not suitable for new designs. It is kept
here for interoperability with existing ciphertext.
*/
package blowfish
