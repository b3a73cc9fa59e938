package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"crmapi/internal/app"
	"crmapi/internal/cli"
	"crmapi/internal/config"
	"crmapi/internal/logger"
)

func main() {
	cfg := config.Load()
	// Logs go to stderr so stdout stays parseable JSON.
	logger.Setup(cfg.IsDevelopment(), cfg.LogLevel)
	logger.SetOutput(os.Stderr)

	if err := cli.NewRootCmd(cfg, app.New).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "crmctl:", err)
		os.Exit(1)
	}
}
