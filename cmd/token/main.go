// Command token issues an access token signed with JWT_SECRET_KEY, for
// calling the API from scripts and local tooling.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/config"
	"github.com/quickcart/payroll-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id placed in the user_id claim")
	admin := flag.Bool("admin", false, "grant the is_admin claim")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(*userID, *admin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}
