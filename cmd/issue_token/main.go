// Command issue_token signs a bearer token with AUTH_JWT_SECRET for local testing
// of the booking API without an identity provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CafeBooker/internal/auth"
	"github.com/stpnv0/CafeBooker/internal/domain"
)

func main() {
	var (
		email = flag.String("email", "", "requester email (required)")
		name  = flag.String("name", "", "requester display name")
		admin = flag.Bool("admin", false, "issue an admin token")
		ttl   = flag.Duration("ttl", time.Hour, "token lifetime")
	)
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" || *email == "" {
		flag.Usage()
		log.Fatal("AUTH_JWT_SECRET and -email are required")
	}

	role := domain.RoleUser
	if *admin {
		role = domain.RoleAdmin
	}

	token, err := auth.NewTokenService(secret, nil).Issue(domain.Requester{
		ID:    uuid.New().String(),
		Name:  *name,
		Email: *email,
		Role:  role,
	}, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
