package cmd

import (
	"fmt"
	"os"
	"strconv"

	"athlete-dashboard/core/config"
	"athlete-dashboard/core/middleware/auth"

	"github.com/spf13/cobra"
)

// nonceCmd issues a REST nonce, handy for calling the API with curl
var nonceCmd = &cobra.Command{
	Use:   "nonce [user_id]",
	Short: "Issue a REST nonce for a user",
	Long:  `Prints an X-WP-Nonce value valid for the given user with the configured secret and lifetime.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil || id == 0 {
			fmt.Printf("Invalid user id %q\n", args[0])
			os.Exit(1)
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		nonces := auth.NewNonces(cfg.Auth.NonceSecret, cfg.Auth.Lifetime())
		fmt.Printf("%s: %d\n", auth.UserHeader, id)
		fmt.Printf("%s: %s\n", auth.NonceHeader, nonces.Create(uint(id)))
	},
}

func init() {
	RootCmd.AddCommand(nonceCmd)
}
