package blowfish

// f is the round function. The additions wrap modulo 2^32.
func f(x uint32, c *Cipher) uint32 {
	return ((c.s[0][byte(x>>24)] + c.s[1][byte(x>>16)]) ^ c.s[2][byte(x>>8)]) + c.s[3][byte(x)]
}

func encryptBlock(l, r uint32, c *Cipher) (uint32, uint32) {
	for i := 0; i < 16; i++ {
		l ^= c.p[i]
		r ^= f(l, c)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[16]
	l ^= c.p[17]
	return l, r
}

// decryptBlock runs the same network with the subkeys in reverse.
func decryptBlock(l, r uint32, c *Cipher) (uint32, uint32) {
	for i := 17; i > 1; i-- {
		l ^= c.p[i]
		r ^= f(l, c)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[1]
	l ^= c.p[0]
	return l, r
}
