// Package cli implements hotelctl, the operator command line for the booking service.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const (
	EnvServerURL     = "HOTELBOOKING_URL"
	DefaultServerURL = "http://localhost:8080"
	ServiceName      = "hotelctl"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Operate a hotel booking service: storage maintenance and API access",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newBookCmd())
	root.AddCommand(newAvailabilityCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newSearchCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func serverURLFromEnv() string {
	if v := os.Getenv(EnvServerURL); v != "" {
		return v
	}
	return DefaultServerURL
}
