package hash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

func TestSha256(t *testing.T) {
	got := Sha256(nil)
	want := fromHex(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sha256(nil) = %x", got)
	}
}

func TestSha256d(t *testing.T) {
	got := Sha256d([]byte("hello"))
	want := fromHex(t, "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sha256d(hello) = %x", got)
	}
}

func TestChecksum(t *testing.T) {
	sum := Sha256d([]byte("hello"))
	got := Checksum([]byte("hello"))
	if !bytes.Equal(got[:], sum[:4]) {
		t.Errorf("Checksum = %x, want first four of %x", got, sum)
	}
}

func TestRipemd160(t *testing.T) {
	got := Ripemd160(nil)
	want := fromHex(t, "9c1185a5c5e9fc54612808977ee8f548b2258d31")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Ripemd160(nil) = %x", got)
	}
}

func TestHash160(t *testing.T) {
	// HASH160 of the generator point's compressed encoding.
	pub := fromHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	got := Hash160(pub)
	want := fromHex(t, "751e76e8199196d454941c45d1b3a323f1433bd6")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Hash160(G) = %x, want %x", got, want)
	}
}

// TestHmacSha512 uses test case 1 from RFC 4231.
func TestHmacSha512(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	got := HmacSha512(key, []byte("Hi There"))
	want := fromHex(t, "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde"+
		"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854")
	if !bytes.Equal(got[:], want) {
		t.Errorf("HmacSha512 = %x", got)
	}
}
