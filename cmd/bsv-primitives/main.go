// bsv-primitives CLI - key, signature and script bytecode tooling
//
// This CLI demonstrates the bsv-primitives library: key generation,
// hierarchical derivation, message signing/verification and script
// bytecode inspection.
//
// Example usage:
//
//	# Generate a fresh key pair
//	bsv-primitives keygen
//
//	# Derive a child key from a seed
//	bsv-primitives derive 000102030405060708090a0b0c0d0e0f "m/0'/1"
//
//	# Inspect a serialized extended key
//	bsv-primitives xprv xprv9s21ZrQH143K...
//
//	# Sign and verify a message
//	bsv-primitives sign <wif> "message"
//	bsv-primitives verify <pubkey-hex> "message" <der-hex>
//
//	# Render script bytecode as ASM
//	bsv-primitives script 76a914...88ac [--extended]
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/suffix-labs/bsv-primitives/pkg/bip32"
	"github.com/suffix-labs/bsv-primitives/pkg/ecdsa"
	"github.com/suffix-labs/bsv-primitives/pkg/keys"
	"github.com/suffix-labs/bsv-primitives/pkg/script"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "keygen":
		cmdKeygen()
	case "derive":
		cmdDerive()
	case "xprv":
		cmdXprv()
	case "sign":
		cmdSign()
	case "verify":
		cmdVerify()
	case "script":
		cmdScript()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bsv-primitives - key, signature and script bytecode tooling

Commands:
  keygen                          Generate a key pair
  derive <seed-hex> <path>        Derive an extended key from a seed
  xprv <xprv-string>              Inspect a serialized extended key
  sign <wif> <message>            Sign a message (deterministic k)
  verify <pub-hex> <msg> <der>    Verify a message signature
  script <hex> [--extended]       Render script bytecode as ASM`)
}

func cmdKeygen() {
	priv, err := keys.RandomPrivateKey(rand.Reader)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("wif:        %s\n", priv.ToWIF(true, false))
	fmt.Printf("public key: %x\n", priv.PublicKey().Bytes())
}

func cmdDerive() {
	if len(os.Args) != 4 {
		fatalf("usage: derive <seed-hex> <path>")
	}
	seed, err := hex.DecodeString(os.Args[2])
	if err != nil {
		fatalf("bad seed hex: %v", err)
	}

	master, err := bip32.FromSeed(seed)
	if err != nil {
		fatal(err)
	}
	node, err := master.DeriveFromPath(os.Args[3])
	if err != nil {
		fatal(err)
	}

	chainCode := node.ChainCode()
	fmt.Printf("xprv:        %s\n", node)
	fmt.Printf("depth:       %d\n", node.Depth())
	fmt.Printf("index:       %d\n", node.Index())
	fmt.Printf("chain code:  %x\n", chainCode[:])
	fmt.Printf("public key:  %x\n", node.PublicKey().Bytes())
}

func cmdXprv() {
	if len(os.Args) != 3 {
		fatalf("usage: xprv <xprv-string>")
	}
	node, err := bip32.FromString(os.Args[2])
	if err != nil {
		fatal(err)
	}

	chainCode := node.ChainCode()
	fingerprint := node.ParentFingerprint()
	fmt.Printf("depth:              %d\n", node.Depth())
	fmt.Printf("index:              %d\n", node.Index())
	fmt.Printf("parent fingerprint: %x\n", fingerprint[:])
	fmt.Printf("chain code:         %x\n", chainCode[:])
	fmt.Printf("public key:         %x\n", node.PublicKey().Bytes())
}

func cmdSign() {
	if len(os.Args) != 4 {
		fatalf("usage: sign <wif> <message>")
	}
	priv, err := keys.PrivateKeyFromWIF(os.Args[2])
	if err != nil {
		fatal(err)
	}

	sig, err := ecdsa.SignMessage(priv, []byte(os.Args[3]))
	if err != nil {
		fatal(err)
	}
	fmt.Printf("public key: %x\n", priv.PublicKey().Bytes())
	fmt.Printf("signature:  %s\n", sig.SerializeHex())
}

func cmdVerify() {
	if len(os.Args) != 5 {
		fatalf("usage: verify <pub-hex> <message> <der-hex>")
	}
	pubKey, err := hex.DecodeString(os.Args[2])
	if err != nil {
		fatalf("bad public key hex: %v", err)
	}
	sig, err := keys.SignatureFromDERHex(os.Args[4])
	if err != nil {
		fatal(err)
	}

	ok, err := ecdsa.VerifyDigest([]byte(os.Args[3]), pubKey, sig, ecdsa.SigningHashSha256, false)
	if err != nil {
		fatal(err)
	}
	fmt.Println("verified:", ok)
}

func cmdScript() {
	if len(os.Args) < 3 {
		fatalf("usage: script <hex> [--extended]")
	}
	parsed, err := script.DecodeHex(os.Args[2])
	if err != nil {
		fatal(err)
	}

	if len(os.Args) > 3 && os.Args[3] == "--extended" {
		fmt.Println(parsed.ToExtendedASM())
		return
	}
	fmt.Println(parsed.ToASM())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
