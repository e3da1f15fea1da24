// Command hashpass generates the bcrypt hash for the admin passphrase.
// The output is the value for ADMIN_PASSPHRASE_HASH.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mpcportal/admissions/internal/server/auth"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func readPassphrase() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Enter admin passphrase: ")
		pw, err := readPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	// Piped input: read one line.
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	passphrase, err := readPassphrase()
	if err != nil {
		log.Fatalf("reading passphrase: %v", err)
	}
	if passphrase == "" {
		log.Fatal("passphrase must not be empty")
	}

	hash, err := auth.HashPassphrase(passphrase)
	if err != nil {
		log.Fatalf("hashing passphrase: %v", err)
	}
	fmt.Println(hash)
}
