// Command genhash prints bcrypt hashes for seeding users directly in SQL.
//
//	go run ./scripts demo@humancapital.az:secret123 company@humancapital.az:secret123
package main

import (
	"fmt"
	"os"
	"strings"

	"humancapital-api/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash email:password [email:password ...]")
		os.Exit(2)
	}

	for _, arg := range os.Args[1:] {
		email, pass, ok := strings.Cut(arg, ":")
		if !ok || pass == "" {
			fmt.Fprintf(os.Stderr, "skipping %q: expected email:password\n", arg)
			continue
		}
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nHash: %s\n\n", email, hash)
	}
}
