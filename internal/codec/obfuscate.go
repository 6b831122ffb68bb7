package codec

// ObfuscationKey is the repeating XOR key applied to every record line.
const ObfuscationKey = "9f42cb71de86a0e415ad563ef28029ba"

// Obfuscate XORs b in place with ObfuscationKey starting at key index 0.
// Applying it twice restores the original bytes.
func Obfuscate(b []byte) {
	for i := range b {
		b[i] ^= ObfuscationKey[i%len(ObfuscationKey)]
	}
}
