// Package main implements the kmapctl CLI for manual operations against the kmapd HTTP server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the kmapd HTTP server
	serverURL string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kmapctl",
	Short: "CLI for kmapd HTTP server operations",
	Long: `kmapctl is a command-line interface for interacting with the kmapd HTTP server.
It resolves Korean test-case phrases into automation actions and generates
Groovy scripts from full test-case documents.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:9120", "kmapd server URL")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(healthCmd)
}

// resolveCmd resolves a single phrase
var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase>",
	Short: "Resolve a Korean phrase to an automation action",
	Long: `Resolve a single Korean test-case phrase against the kmapd server.

Examples:
  # Resolve a phrase
  kmapctl resolve "클릭"

  # Use a different server
  kmapctl resolve --server http://localhost:8080 "총 개수 확인"`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// scriptCmd generates an integrated script from a test-case document
var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Generate a Groovy script from a test-case document",
	Long: `Generate an integrated Groovy script from a test-case document read
from a file or stdin.

Examples:
  # Generate from a file
  kmapctl script testcase.txt

  # Generate from stdin
  cat testcase.txt | kmapctl script -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

// analyzeCmd reports mapping coverage for a test-case document
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report mapping coverage for a test-case document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

// statsCmd fetches resolver statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show kmapd resolver statistics",
	RunE:  runStats,
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check kmapd server health",
	Long: `Check the health status of the kmapd HTTP server.

Examples:
  # Check health
  kmapctl health

  # Check health on a different server
  kmapctl health --server http://localhost:8080`,
	RunE: runHealth,
}

// ResolveRequest matches internal/server ResolveRequest
type ResolveRequest struct {
	Phrase string `json:"phrase"`
}

// TestcaseRequest matches internal/server TestcaseRequest
type TestcaseRequest struct {
	Content string `json:"content"`
	Mode    string `json:"mode,omitempty"`
}

// TestcaseScriptResponse matches internal/server TestcaseScriptResponse
type TestcaseScriptResponse struct {
	Script string `json:"script"`
}

// HealthResponse matches internal/server HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	body, err := postJSON("/api/v1/resolve", ResolveRequest{Phrase: args[0]}, 30*time.Second)
	if err != nil {
		return err
	}
	return printIndented(body)
}

func runScript(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	body, err := postJSON("/api/v1/testcase", TestcaseRequest{Content: string(content)}, 60*time.Second)
	if err != nil {
		return err
	}

	var resp TestcaseScriptResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	fmt.Print(resp.Script)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	body, err := postJSON("/api/v1/testcase", TestcaseRequest{Content: string(content), Mode: "analyze"}, 60*time.Second)
	if err != nil {
		return err
	}
	return printIndented(body)
}

func runStats(cmd *cobra.Command, args []string) error {
	client := &http.Client{Timeout: 5 * time.Second}

	url := fmt.Sprintf("%s/api/v1/statistics", serverURL)
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return printIndented(body)
}

func runHealth(cmd *cobra.Command, args []string) error {
	url := fmt.Sprintf("%s/health", serverURL)

	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect to %s: %v\n", url, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var healthResp HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&healthResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Server status: %s\n", healthResp.Status)
	return nil
}

// readInput reads the document from a file argument or stdin when the
// argument is absent or "-".
func readInput(args []string) ([]byte, error) {
	var content []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("no content to process")
	}
	return content, nil
}

// postJSON sends a JSON POST to the server and returns the response body.
func postJSON(path string, payload any, timeout time.Duration) ([]byte, error) {
	reqJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s", serverURL, path)
	httpReq, err := http.NewRequest("POST", url, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// printIndented pretty-prints a JSON body to stdout.
func printIndented(body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}
