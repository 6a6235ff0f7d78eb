package common

// WipeByteArray zeroes the buffer in place. Used to clear passwords from
// memory as soon as they have been handed to the backend.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
