// Package ecdsa implements the secp256k1 signing engine: explicit-k
// signing, the algebraic private-key recovery that inverts it, digest
// verification with selectable byte order, and deterministic (RFC 6979)
// message signing.
//
// Exposing the raw k-based sign/recover pair, rather than only "sign with a
// random k", makes the engine testable as a closed algebraic system:
//
//	s = k^-1 (z + r*d) mod n        (SignWithK)
//	d = r^-1 (s*k - z) mod n        (PrivateKeyFromSignatureK)
//
// and supports protocols where k is deliberately fixed. Every function here
// is pure and deterministic for fixed inputs.
package ecdsa

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/suffix-labs/bsv-primitives/pkg/keys"
)

// SignWithK produces a signature over message using an explicitly supplied
// ephemeral scalar. The s scalar is normalized to the low half of the order
// (the on-chain malleability rule); PrivateKeyFromSignatureK accounts for
// the possible negation.
func SignWithK(privateKey, ephemeralKey *keys.PrivateKey, message []byte, hashAlgo SigningHash) (*keys.Signature, error) {
	d := privateKey.Scalar()
	k := ephemeralKey.Scalar()

	digest := hashAlgo.Digest(message)
	var z secp256k1.ModNScalar
	z.SetByteSlice(digest[:])

	// r = (k*G).x mod n
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &kG)
	kG.ToAffine()
	var r secp256k1.ModNScalar
	r.SetBytes(kG.X.Bytes())
	if r.IsZero() {
		return nil, fmt.Errorf("%w: r = 0", ErrBadNonce)
	}

	// s = k^-1 (z + r*d) mod n
	kInv := new(secp256k1.ModNScalar).InverseValNonConst(k)
	s := new(secp256k1.ModNScalar).Mul2(&r, d).Add(&z).Mul(kInv)
	if s.IsZero() {
		return nil, fmt.Errorf("%w: s = 0", ErrBadNonce)
	}
	if s.IsOverHalfOrder() {
		s.Negate()
	}

	return keys.NewSignature(&r, s), nil
}

// PrivateKeyFromSignatureK recovers the unknown private scalar from a
// signature whose ephemeral scalar is known, by inverting the signing
// relation. The supplied public key disambiguates the sign of s, which may
// have been negated by low-s normalization.
func PrivateKeyFromSignatureK(signature *keys.Signature, publicKey *keys.PublicKey, ephemeralKey *keys.PrivateKey, message []byte, hashAlgo SigningHash) (*keys.PrivateKey, error) {
	k := ephemeralKey.Scalar()

	digest := hashAlgo.Digest(message)
	var z secp256k1.ModNScalar
	z.SetByteSlice(digest[:])

	rInv := new(secp256k1.ModNScalar).InverseValNonConst(&signature.R)

	// d = r^-1 (s*k - z) mod n, for s and -s.
	attempt := func(s *secp256k1.ModNScalar) *keys.PrivateKey {
		negZ := new(secp256k1.ModNScalar).Set(&z)
		negZ.Negate()

		d := new(secp256k1.ModNScalar).Mul2(s, k)
		d.Add(negZ)
		d.Mul(rInv)

		candidate, err := keys.PrivateKeyFromScalar(d)
		if err != nil {
			return nil
		}
		if !candidate.PublicKey().IsEqual(publicKey) {
			return nil
		}
		return candidate
	}

	if priv := attempt(&signature.S); priv != nil {
		return priv, nil
	}
	negS := new(secp256k1.ModNScalar).Set(&signature.S)
	negS.Negate()
	if priv := attempt(negS); priv != nil {
		return priv, nil
	}

	return nil, ErrKeyRecovery
}

// VerifyDigest checks a signature over message against public key bytes.
// reverseK selects whether the digest byte order is reversed before the
// curve-library check, compensating for the big-endian/little-endian digest
// feed split between historical signer implementations.
func VerifyDigest(message, pubKeyBytes []byte, signature *keys.Signature, hashAlgo SigningHash, reverseK bool) (bool, error) {
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}

	digest := hashAlgo.Digest(message)
	if reverseK {
		digest = reverse32(digest)
	}

	sig := secpecdsa.NewSignature(&signature.R, &signature.S)
	if !sig.Verify(digest[:], pubKey) {
		return false, ErrVerifyFailed
	}
	return true, nil
}

// SignMessage signs a message with a deterministic RFC 6979 ephemeral
// scalar over the single SHA-256 digest.
func SignMessage(privateKey *keys.PrivateKey, message []byte) (*keys.Signature, error) {
	digest := SigningHashSha256.Digest(message)
	key := secp256k1.NewPrivateKey(privateKey.Scalar())
	der := secpecdsa.Sign(key, digest[:]).Serialize()
	return keys.SignatureFromDER(der)
}

// VerifyMessage checks a SignMessage signature.
func VerifyMessage(message []byte, publicKey *keys.PublicKey, signature *keys.Signature) bool {
	ok, err := VerifyDigest(message, publicKey.Bytes(), signature, SigningHashSha256, false)
	return err == nil && ok
}

// SignRecoverable signs message with a deterministic ephemeral scalar and
// returns the 65-byte compact encoding carrying the public key recovery
// code in its header byte.
func SignRecoverable(privateKey *keys.PrivateKey, message []byte, hashAlgo SigningHash, compressed bool) []byte {
	digest := hashAlgo.Digest(message)
	key := secp256k1.NewPrivateKey(privateKey.Scalar())
	return secpecdsa.SignCompact(key, digest[:], compressed)
}

// RecoverPublicKey recovers the signing public key from a 65-byte compact
// signature. The second return reports whether the signing key was
// compressed.
func RecoverPublicKey(compactSig, message []byte, hashAlgo SigningHash) (*keys.PublicKey, bool, error) {
	digest := hashAlgo.Digest(message)
	pubKey, compressed, err := secpecdsa.RecoverCompact(compactSig, digest[:])
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrKeyRecovery, err)
	}
	recovered, err := keys.ParsePublicKey(pubKey.SerializeCompressed())
	if err != nil {
		return nil, false, err
	}
	return recovered, compressed, nil
}
