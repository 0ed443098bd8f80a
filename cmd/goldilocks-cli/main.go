// Package main provides the goldilocks-cli command line interface for
// hashing, MACing, and symmetric/public-key authenticated encryption
// built on Keccak, SP 800-185, and Ed448-Goldilocks.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/nwade/goldilocks/curve"
	"github.com/nwade/goldilocks/pke"
	"github.com/nwade/goldilocks/symmetric"
	"github.com/nwade/goldilocks/utils"
	"github.com/nwade/goldilocks/xof"
)

const (
	version = "1.0.0"
	appName = "goldilocks-cli"
)

// OutputFormat represents the output format for serialization.
type OutputFormat string

const (
	FormatHex    OutputFormat = "hex"
	FormatBase64 OutputFormat = "base64"
)

// CLIConfig holds CLI configuration shared across subcommands.
type CLIConfig struct {
	OutputFormat OutputFormat
	OutputFile   string
	InputFile    string
	Verbose      bool
	Timing       bool
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, version)
	case "hash":
		cmdHash(os.Args[2:])
	case "mac":
		cmdMAC(os.Args[2:])
	case "encrypt":
		cmdEncrypt(os.Args[2:])
	case "decrypt":
		cmdDecrypt(os.Args[2:])
	case "keygen":
		cmdKeygen(os.Args[2:])
	case "pke-encrypt":
		cmdPKEEncrypt(os.Args[2:])
	case "pke-decrypt":
		cmdPKEDecrypt(os.Args[2:])
	case "benchmark":
		cmdBenchmark(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - Keccak / Ed448-Goldilocks cryptographic toolkit CLI

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    hash           Compute a plain cryptographic hash (KMACXOF256, domain "D")
    mac            Compute an authentication tag under a passphrase (domain "T")
    encrypt        Symmetric authenticated encryption under a passphrase
    decrypt        Symmetric authenticated decryption under a passphrase
    keygen         Derive an Ed448-Goldilocks key pair from a passphrase
    pke-encrypt    Public-key authenticated encryption under a recipient point
    pke-decrypt    Public-key authenticated decryption under a passphrase
    benchmark      Run performance benchmarks
    version        Show version information
    help           Show this help message

OPTIONS:
    --input <file>              Read message from file instead of stdin
    --output <file>             Output file (default: stdout)
    --format <hex|base64>       Output encoding (default: hex)
    --timing                    Show timing information
    --verbose                   Verbose output
    --public-key-x <hex>        Recipient V.x (pke-encrypt only)
    --public-key-y <hex>        Recipient V.y (pke-encrypt only)

EXAMPLES:
    %s hash --input message.txt
    %s mac --input message.txt
    %s encrypt --input message.txt --output ct.bin
    %s decrypt --input ct.bin
    %s keygen
    %s pke-encrypt --public-key-x <hex> --public-key-y <hex> --input message.txt
    %s pke-decrypt --input ct.bin
`, appName, appName, appName, appName, appName, appName, appName, appName, appName)
}

func cmdHash(args []string) {
	config := parseConfig(args)
	msg := readMessage(config)

	start := time.Now()
	digest := xof.KMACXOF256(nil, msg, 512, []byte("D"))
	elapsed := time.Since(start)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Hash took: %v\n", elapsed)
	}
	writeOutput(digest, config)
}

func cmdMAC(args []string) {
	config := parseConfig(args)
	msg := readMessage(config)
	pw := readPassphrase("Enter passphrase: ")

	start := time.Now()
	tag := xof.KMACXOF256(pw, msg, 512, []byte("T"))
	elapsed := time.Since(start)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "MAC took: %v\n", elapsed)
	}
	writeOutput(tag, config)
}

func cmdEncrypt(args []string) {
	config := parseConfig(args)
	msg := readMessage(config)
	pw := readPassphrase("Enter passphrase: ")

	start := time.Now()
	ct, err := symmetric.Encrypt(pw, msg)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encrypting: %v\n", err)
		os.Exit(1)
	}

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Encryption took: %v\n", elapsed)
	}
	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Plaintext size: %d bytes, cryptogram size: %d bytes\n", len(msg), len(ct))
	}
	writeOutput(ct, config)
}

func cmdDecrypt(args []string) {
	config := parseConfig(args)
	ct := readCryptogramBytes(config)
	pw := readPassphrase("Enter passphrase used for encryption: ")

	start := time.Now()
	m, err := symmetric.Decrypt(pw, ct)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decrypting: %v\n", err)
		os.Exit(1)
	}

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Decryption took: %v\n", elapsed)
	}
	writeOutput(m, config)
}

func cmdKeygen(args []string) {
	config := parseConfig(args)
	pw := readPassphrase("Enter passphrase: ")

	start := time.Now()
	kp := pke.GenerateKeyPair(pw)
	elapsed := time.Since(start)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Key derivation took: %v\n", elapsed)
	}

	vx := kp.Public.X.Text(16)
	vy := kp.Public.Y.Text(16)
	fmt.Printf("V.x = %s\nV.y = %s\n", vx, vy)
}

func cmdPKEEncrypt(args []string) {
	config := parseConfig(args)
	vxHex := getArg(args, "--public-key-x", "-vx")
	vyHex := getArg(args, "--public-key-y", "-vy")
	if vxHex == "" || vyHex == "" {
		fmt.Fprintf(os.Stderr, "Error: --public-key-x and --public-key-y are required (hex, see keygen output)\n")
		os.Exit(1)
	}

	vx, ok1 := new(big.Int).SetString(vxHex, 16)
	vy, ok2 := new(big.Int).SetString(vyHex, 16)
	if !ok1 || !ok2 {
		fmt.Fprintf(os.Stderr, "Error: invalid hex in public key coordinates\n")
		os.Exit(1)
	}
	v := curve.Point{X: vx, Y: vy}
	if !curve.OnCurve(v) {
		fmt.Fprintf(os.Stderr, "Error: the given point does not satisfy the curve equation\n")
		os.Exit(1)
	}

	msg := readMessage(config)

	start := time.Now()
	ct, err := pke.Encrypt(v, msg)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encrypting: %v\n", err)
		os.Exit(1)
	}
	if config.Timing {
		fmt.Fprintf(os.Stderr, "EC encryption took: %v\n", elapsed)
	}

	wire := pke.Marshal(ct, 57)
	writeOutput(wire, config)
}

func cmdPKEDecrypt(args []string) {
	config := parseConfig(args)
	data := readCryptogramBytes(config)
	pw := readPassphrase("Enter passphrase used to derive your key pair: ")

	ct, err := pke.Unmarshal(data, 57, 56)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cryptogram: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	m, err := pke.Decrypt(pw, ct)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decrypting: %v\n", err)
		os.Exit(1)
	}
	if config.Timing {
		fmt.Fprintf(os.Stderr, "EC decryption took: %v\n", elapsed)
	}
	writeOutput(m, config)
}

func cmdBenchmark(args []string) {
	iterationsStr := getArg(args, "--iterations", "-n")
	iterations := 10
	if iterationsStr != "" {
		_, _ = fmt.Sscanf(iterationsStr, "%d", &iterations)
	}
	if iterations < 1 {
		iterations = 1
	}

	fmt.Println("goldilocks Benchmark Results")
	fmt.Println("============================")
	fmt.Printf("Iterations: %d\n\n", iterations)

	msg := []byte("the quick brown fox jumps over the lazy dog, repeated for bulk")
	pw := []byte("benchmark passphrase")

	fmt.Println("Symmetric authenticated encryption")
	fmt.Println("-----------------------------------")
	var encTotal, decTotal time.Duration
	var ct []byte
	for i := 0; i < iterations; i++ {
		start := time.Now()
		var err error
		ct, err = symmetric.Encrypt(pw, msg)
		encTotal += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Encrypt error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("  Encrypt: %v (avg)\n", encTotal/time.Duration(iterations))
	for i := 0; i < iterations; i++ {
		start := time.Now()
		_, err := symmetric.Decrypt(pw, ct)
		decTotal += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decrypt error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("  Decrypt: %v (avg)\n", decTotal/time.Duration(iterations))

	fmt.Println()
	fmt.Println("Ed448-Goldilocks key derivation and EC encryption")
	fmt.Println("---------------------------------------------------")
	var keygenTotal time.Duration
	kp := pke.GenerateKeyPair(pw)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		kp = pke.GenerateKeyPair(pw)
		keygenTotal += time.Since(start)
	}
	fmt.Printf("  Keygen:  %v (avg)\n", keygenTotal/time.Duration(iterations))

	var ecEncTotal, ecDecTotal time.Duration
	var ecCT pke.Cryptogram
	for i := 0; i < iterations; i++ {
		start := time.Now()
		var err error
		ecCT, err = pke.Encrypt(kp.Public, msg)
		ecEncTotal += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "EC encrypt error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("  EC Encrypt: %v (avg)\n", ecEncTotal/time.Duration(iterations))
	for i := 0; i < iterations; i++ {
		start := time.Now()
		_, err := pke.Decrypt(pw, ecCT)
		ecDecTotal += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "EC decrypt error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("  EC Decrypt: %v (avg)\n", ecDecTotal/time.Duration(iterations))

	fmt.Println()
	fmt.Println("Benchmark complete!")
}

// ============================================================================
// Utility functions
// ============================================================================

func parseConfig(args []string) CLIConfig {
	config := CLIConfig{OutputFormat: FormatHex}

	format := getArg(args, "--format", "-f")
	switch format {
	case "hex", "":
		config.OutputFormat = FormatHex
	case "base64":
		config.OutputFormat = FormatBase64
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format '%s'. Must be one of: hex, base64\n", format)
		os.Exit(1)
	}

	config.OutputFile = getArg(args, "--output", "-o")
	config.InputFile = getArg(args, "--input", "-i")
	config.Verbose = hasFlag(args, "--verbose", "-v")
	config.Timing = hasFlag(args, "--timing", "-t")

	return config
}

func getArg(args []string, long, short string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == long || args[i] == short {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, long, short string) bool {
	for _, arg := range args {
		if arg == long || arg == short {
			return true
		}
	}
	return false
}

// readFileChecked stats filename before reading it, rejecting anything
// over utils.MaxPayloadLength so a malicious or mistaken huge input can't
// force an oversized allocation.
func readFileChecked(filename string) []byte {
	info, err := os.Stat(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	if err := utils.CheckLength(int(info.Size()), utils.MaxPayloadLength); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input file too large: %v\n", err)
		os.Exit(1)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	return data
}

// readMessage reads a plaintext message either from --input or stdin.
func readMessage(config CLIConfig) []byte {
	if config.InputFile != "" {
		return readFileChecked(config.InputFile)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
		os.Exit(1)
	}
	if err := utils.CheckLength(len(data), utils.MaxPayloadLength); err != nil {
		fmt.Fprintf(os.Stderr, "Error: stdin input too large: %v\n", err)
		os.Exit(1)
	}
	return data
}

// readCryptogramBytes reads a cryptogram either raw from --input or decodes
// hex/base64 text from stdin.
func readCryptogramBytes(config CLIConfig) []byte {
	if config.InputFile != "" {
		return readFileChecked(config.InputFile)
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
		os.Exit(1)
	}
	if err := utils.CheckLength(len(raw), utils.MaxPayloadLength); err != nil {
		fmt.Fprintf(os.Stderr, "Error: stdin input too large: %v\n", err)
		os.Exit(1)
	}
	trimmed := strings.TrimSpace(string(raw))
	if decoded, err := hex.DecodeString(trimmed); err == nil {
		return decoded
	}
	if decoded, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		return decoded
	}
	return raw
}

// readPassphrase prompts on the terminal with echo disabled via
// golang.org/x/term, falling back to a plain stdin line when stdin is not
// a terminal (e.g. piped input in scripts).
func readPassphrase(prompt string) []byte {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading passphrase: %v\n", err)
			os.Exit(1)
		}
		return pw
	}

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			break
		}
	}
	return line
}

func writeOutput(data []byte, config CLIConfig) {
	var encoded []byte
	if config.OutputFile == "" {
		switch config.OutputFormat {
		case FormatBase64:
			encoded = []byte(base64.StdEncoding.EncodeToString(data))
		default:
			encoded = []byte(hex.EncodeToString(data))
		}
	} else {
		encoded = data
	}

	if config.OutputFile != "" {
		f, err := os.OpenFile(config.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if _, err := f.Write(encoded); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if err := os.Chmod(config.OutputFile, 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting file permissions: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(string(encoded))
	}
}
