package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/zoo-api/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

var errServerUnhealthy = errors.New("server unhealthy")

func newHealthCmd() *cobra.Command {
	var baseURL string
	var timeout time.Duration
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check a running server's /healthz endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: timeout}
			check := func(ctx context.Context) (httpapi.HealthView, error) {
				return fetchHealth(ctx, client, baseURL)
			}

			if asJSON {
				health, err := check(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSONOutput(cmd, health)
			}

			result, err := runHealthCheck(cmd.Context(), cmd.ErrOrStderr(), baseURL, check)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://127.0.0.1:3001", "Base URL of the server")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func fetchHealth(ctx context.Context, client *http.Client, baseURL string) (httpapi.HealthView, error) {
	endpoint := strings.TrimRight(baseURL, "/") + "/healthz"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return httpapi.HealthView{}, fmt.Errorf("build health request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return httpapi.HealthView{}, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return httpapi.HealthView{}, fmt.Errorf("%w: %s returned %d: %s", errServerUnhealthy, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var health httpapi.HealthView
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return httpapi.HealthView{}, fmt.Errorf("decode health response: %w", err)
	}
	if health.Status != "ok" {
		return health, fmt.Errorf("%w: status %q", errServerUnhealthy, health.Status)
	}

	return health, nil
}
