package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	roundFlag string
	holeFlag  string
)

func init() {
	standingsCmd.Flags().StringVar(&roundFlag, "round", "", "Round number (defaults to the latest)")
	standingsCmd.Flags().StringVar(&holeFlag, "hole", "", "Holes-completed cutoff 0-18 (defaults to 18)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(statsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List the tournaments in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments")
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <file>",
	Short: "Show the header details of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/details?file=" + url.QueryEscape(args[0]))
	},
}

var courseCmd = &cobra.Command{
	Use:   "course <file>",
	Short: "Show the course layout of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/course?file=" + url.QueryEscape(args[0]))
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <file>",
	Short: "Show the standings of a tournament round at a hole cutoff",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("file", args[0])
		if roundFlag != "" {
			query.Set("round", roundFlag)
		}
		if holeFlag != "" {
			query.Set("hole", holeFlag)
		}
		return performGetRequest("/tournaments/standings?" + query.Encode())
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Trigger an ingest run on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/ingest")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the persistent request counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
