package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/AzielCF/az-drive/config"
	"github.com/AzielCF/az-drive/ui/rest"
	"github.com/AzielCF/az-drive/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the resource read and cache endpoints over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	app := fiber.New(fiber.Config{
		AppName:      "Az-Drive",
		ServerHeader: "Hidden",
		Network:      "tcp",
	})

	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(middleware.Recovery())
	if config.AppDebug {
		app.Use(logger.New())
	}

	rest.InitRestResource(app, resourceUsecase, cacheUsecase)
	rest.InitRestHealth(app)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		StopApp()
		_ = app.Shutdown()
	}()

	logrus.Printf("Starting REST server on :%s", config.AppPort)
	if err := app.Listen(":" + config.AppPort); err != nil {
		logrus.Fatalf("Failed to start REST server: %v", err)
	}
}
