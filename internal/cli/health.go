package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhofkens/AI-presenter/internal/health"
)

// ErrBackendUnavailable is reported when the health probe fails
var ErrBackendUnavailable = errors.New("Backend connection failed")

func newHealthCommand() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the health endpoint of a running backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := probe(cmd, client, strings.TrimSuffix(baseURL, "/")+"/api/health")
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ErrBackendUnavailable.Error())
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backend status: %s (%s)\n", resp.Status, resp.Timestamp)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the backend")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	return cmd
}

func probe(cmd *cobra.Command, client *http.Client, url string) (*health.Response, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var body health.Response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &body, nil
}
