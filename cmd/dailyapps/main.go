package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	httpPort int
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "dailyapps",
	Short: "Daily apps - bank, car rental, job board, messenger and restaurant",
	Long: `dailyapps serves five small everyday applications behind one HTTP API:

  /bank        customers, individual and joint accounts, transfers
  /rental      economy and luxury cars, rentals and returns
  /jobs        companies, postings, job seekers and applications
  /messenger   users, conversations, text and media messages
  /restaurant  menus, demand pricing and customer orders

Messenger notifications go through an outbox and are published to Kafka
when KAFKA_BROKER_URL is set, or written to the log otherwise.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides DAILYAPPS_LOG_LEVEL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
