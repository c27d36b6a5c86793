package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-drive/config"
	"github.com/AzielCF/az-drive/ui/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start Google Drive MCP server using SSE",
	Long:  `Start a Google Drive MCP (Model Context Protocol) server using Server-Sent Events (SSE) transport. This allows AI agents to fetch, cache and address Drive documents through a standardized protocol.`,
	Run:   mcpServer,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&config.McpPort, "port", "8080", "Port for the SSE MCP server")
	mcpCmd.Flags().StringVar(&config.McpHost, "host", "localhost", "Host for the SSE MCP server")
}

func mcpServer(_ *cobra.Command, _ []string) {
	// Create MCP server with capabilities
	mcpServer := server.NewMCPServer(
		"Google Drive MCP Server",
		config.AppVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	// Add all Drive tools
	resourceHandler := mcp.InitMcpResource(resourceUsecase, cacheUsecase)
	resourceHandler.AddResourceTools(mcpServer)

	documentHandler := mcp.InitMcpDocument(documentUsecase)
	documentHandler.AddDocumentTools(mcpServer)

	sheetHandler := mcp.InitMcpSheet(sheetUsecase)
	sheetHandler.AddSheetTools(mcpServer)

	fileHandler := mcp.InitMcpFile(fileUsecase)
	fileHandler.AddFileTools(mcpServer)

	// Create SSE server
	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://%s:%s", config.McpHost, config.McpPort)),
		server.WithKeepAlive(true),
	)

	addr := fmt.Sprintf("%s:%s", config.McpHost, config.McpPort)
	logrus.Printf("Starting Google Drive MCP SSE server on %s", addr)
	logrus.Printf("SSE endpoint: http://%s:%s/sse", config.McpHost, config.McpPort)
	logrus.Printf("Message endpoint: http://%s:%s/message", config.McpHost, config.McpPort)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[MCP] Reception of termination signal, shutting down gracefully...")
		StopApp()
		os.Exit(0)
	}()

	if err := sseServer.Start(addr); err != nil {
		logrus.Fatalf("Failed to start SSE server: %v", err)
	}
}
