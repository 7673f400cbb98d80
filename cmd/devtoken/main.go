package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/greatadamu/ledgerlink/internal/pkg/config"
	"github.com/greatadamu/ledgerlink/internal/pkg/jwt"
)

// Issues a signed bearer token for exercising the public APIs locally.
func main() {
	var (
		configPath = flag.String("config", "config/transfer.env", "env file carrying the JWT settings")
		customerID = flag.String("customer", "", "customer ID claim")
		role       = flag.String("role", "customer", "role claim")
	)
	flag.Parse()

	if *customerID == "" {
		log.Fatal("-customer is required")
	}

	configs := config.InitConfig(*configPath)

	token, expiresAt, err := jwt.GenerateToken(*customerID, *role, configs.JWT)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Printf("%s\nexpires_at=%d\n", token, expiresAt)
}
