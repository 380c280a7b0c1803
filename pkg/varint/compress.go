package varint

// Value compression maps the monetary amounts that actually occur on chain
// (mostly round numbers of satoshis) onto small integers that the base-128
// varint then encodes in very few bytes. The transform peels trailing
// decimal zeros into an exponent and packs the last non-zero digit beside
// it:
//
//	n = 0            -> 0
//	n = d*10^e, 1<=d<=9, e<9 -> 1 + (floor(n/10^(e+1))*9 + d - 1)*10 + e
//	n = x*10^9       -> 1 + (x - 1)*10 + 9
//
// DecompressValue is the inverse actually used when reading compact UTXO
// records; CompressValue is provided so the pair round-trips.

// CompressValue maps an amount onto its compact form.
func CompressValue(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	e := uint64(0)
	for n%10 == 0 && e < 9 {
		n /= 10
		e++
	}
	if e < 9 {
		d := n % 10
		n /= 10
		return 1 + (n*9+d-1)*10 + e
	}
	return 1 + (n-1)*10 + 9
}

// DecompressValue maps a compact form back onto the original amount.
// DecompressValue(0) == 0 by definition.
func DecompressValue(input uint64) uint64 {
	if input == 0 {
		return 0
	}

	var n uint64
	x := input - 1
	e := x % 10
	x /= 10

	if e < 9 {
		d := x%9 + 1
		x /= 9
		n = x*10 + d
	} else {
		n = x + 1
	}

	for e > 0 {
		n *= 10
		e--
	}

	return n
}
