package main

import (
	"fmt"
	"os"

	"artbid-client/internal/apiclient"
	"artbid-client/internal/server"
	"artbid-client/utils"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err == nil {
		utils.Info("loaded configuration from .env", nil)
	}

	backendURL := os.Getenv("MARKETPLACE_API_URL")
	if backendURL == "" {
		utils.Fatal("MARKETPLACE_API_URL is required", nil)
	}

	api := apiclient.NewHTTPClient(backendURL)
	if token := os.Getenv("MARKETPLACE_API_TOKEN"); token != "" {
		api.SetHeader("Authorization", "Bearer "+token)
	}

	router := server.SetupRouter(api, clockwork.NewRealClock())

	port := getPort()
	fmt.Printf("Starting auction view gateway on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
