// Command fernet encrypts and decrypts Fernet tokens from the shell.
//
//	fernet generate-key
//	fernet encrypt [-key SECRET] [message]
//	fernet decrypt [-key SECRET] [-ttl DURATION] [token]
//
// The secret is taken from the -key flag or the FERNET_SECRET
// environment variable; a .env file in the working directory is loaded
// first. When the message or token argument is omitted (or is "-"), it
// is read from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	fernet "github.com/zoran-php/fernet-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: fernet <generate-key|encrypt|decrypt> [args]")
	}

	// Missing .env is fine; FERNET_SECRET may come from the environment.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "generate-key":
		generateKey()
	case "encrypt":
		encrypt(os.Args[2:])
	case "decrypt":
		decrypt(os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func generateKey() {
	secret, err := fernet.GenerateSecret()
	if err != nil {
		fatal("generate secret: %v", err)
	}
	fmt.Println(secret)
}

func encrypt(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	key := fs.String("key", "", "base64url secret (default $FERNET_SECRET)")
	fs.Parse(args)

	f := newFernet(*key)
	msg := readInput(fs.Args())

	token, err := f.Encrypt(msg)
	if err != nil {
		fatal("encrypt: %v", err)
	}
	fmt.Println(token)
}

func decrypt(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	key := fs.String("key", "", "base64url secret (default $FERNET_SECRET)")
	ttl := fs.Duration("ttl", 0, "reject tokens older than this (0 disables)")
	fs.Parse(args)

	f := newFernet(*key)
	token := strings.TrimSpace(string(readInput(fs.Args())))

	msg, err := f.DecryptWithTTL(token, *ttl)
	if err != nil {
		fatal("decrypt: %v", err)
	}
	os.Stdout.Write(msg)
}

func newFernet(key string) *fernet.Fernet {
	if key == "" {
		key = os.Getenv("FERNET_SECRET")
	}
	if key == "" {
		fatal("no secret: pass -key or set FERNET_SECRET")
	}
	f, err := fernet.New(key)
	if err != nil {
		fatal("parse secret: %v", err)
	}
	return f
}

func readInput(args []string) []byte {
	if len(args) > 0 && args[0] != "-" {
		return []byte(args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return data
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
