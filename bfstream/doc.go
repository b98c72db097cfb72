/*
Package bfstream drives a block cipher over byte streams in ECB, CBC or CFB
mode.

Each function consumes src until end of stream, writes the transformed bytes
to dst and flushes dst if it has a Flush method. Nothing but ciphertext is
written: no header, IV or length prefix.

ECB and CBC pad the final plaintext block with PKCS#7 and always emit at least
one block; an aligned plaintext gains a full block of padding. On decryption
only the last block is unpadded, and malformed padding is left in place. A
trailing chunk shorter than a block is ignored when decrypting ECB or CBC.

CFB is a stream mode: ciphertext has exactly the length of the plaintext.
*/
package bfstream
