// riskctl is the operator CLI for the risk service. Every command is a thin
// wrapper over the HTTP API so behavior stays identical to what the portal
// sees.
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
	serverURL     string
	internalToken string
	httpTimeout   time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riskctl",
	Short: "Operator CLI for the VendorSoluce risk service",
	Long: `riskctl drives the risk service over its HTTP API: compute scores,
generate predictions, sweep for anomalies and recompute vendor ratings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the risk service")
	rootCmd.PersistentFlags().StringVar(&internalToken, "token", os.Getenv("VSRP_INTERNAL_TOKEN"), "bearer token for internal endpoints")
	rootCmd.PersistentFlags().DurationVar(&httpTimeout, "timeout", 30*time.Second, "request timeout")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(anomaliesCmd)
	rootCmd.AddCommand(ratingCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(trendsCmd)

	scoreCmd.Flags().String("asset", "", "asset id")
	scoreCmd.Flags().String("vendor", "", "vendor id")
	scoreCmd.Flags().String("relationship", "", "relationship id")
	scoreCmd.Flags().String("assessed-by", "riskctl", "who triggered the assessment")

	trendsCmd.Flags().String("org", "", "organization id (required)")
	trendsCmd.Flags().String("window", "30d", "trend window: 30d, 90d or 1y")
	_ = trendsCmd.MarkFlagRequired("org")
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute a risk score for an asset, vendor or relationship",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{}
		if v, _ := cmd.Flags().GetString("asset"); v != "" {
			body["asset_id"] = v
		}
		if v, _ := cmd.Flags().GetString("vendor"); v != "" {
			body["vendor_id"] = v
		}
		if v, _ := cmd.Flags().GetString("relationship"); v != "" {
			body["relationship_id"] = v
		}
		if len(body) == 0 {
			return fmt.Errorf("at least one of --asset, --vendor or --relationship is required")
		}
		body["assessed_by"], _ = cmd.Flags().GetString("assessed-by")
		return call(http.MethodPost, "/api/v1/risk/score", body, false)
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict <vendor-id>",
	Short: "Generate a forward-looking risk prediction for a vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(http.MethodGet, "/api/v1/risk/predictions/"+args[0], nil, false)
	},
}

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies <vendor-id>",
	Short: "Run the anomaly checks for a vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(http.MethodGet, "/api/v1/risk/anomalies/"+args[0], nil, false)
	},
}

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Vendor rating operations",
}

func init() {
	ratingCmd.AddCommand(&cobra.Command{
		Use:   "get <vendor-id>",
		Short: "Fetch the stored rating for a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(http.MethodGet, "/api/v1/vendors/"+args[0]+"/rating", nil, false)
		},
	})
	ratingCmd.AddCommand(&cobra.Command{
		Use:   "recompute <vendor-id>",
		Short: "Recompute a vendor rating via the internal API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(http.MethodPost, "/_internal/vendors/"+args[0]+"/rating/recompute", nil, true)
		},
	})
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark <vendor-id>",
	Short: "Compare a vendor against its industry peers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(http.MethodGet, "/api/v1/vendors/"+args[0]+"/benchmark", nil, false)
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Fetch the organization risk trend report",
	RunE: func(cmd *cobra.Command, args []string) error {
		org, _ := cmd.Flags().GetString("org")
		window, _ := cmd.Flags().GetString("window")
		path := fmt.Sprintf("/api/v1/analytics/trends?org_id=%s&window=%s", org, window)
		return call(http.MethodGet, path, nil, false)
	},
}

// call performs one API request and pretty-prints the response envelope.
func call(method, path string, body interface{}, internal bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if internal {
		if internalToken == "" {
			return fmt.Errorf("internal endpoints require --token or VSRP_INTERNAL_TOKEN")
		}
		req.Header.Set("Authorization", "Bearer "+internalToken)
	}

	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}
