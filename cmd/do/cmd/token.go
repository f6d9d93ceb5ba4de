package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/goalsetter/internal/app"
	"github.com/templui/goalsetter/internal/config"
	"github.com/templui/goalsetter/internal/logger"
)

// TokenCmd mints a bearer token for an existing account, handy for poking
// the API with curl.
func TokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <email>",
		Short: "Print a bearer token for an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(logger.Options{Development: true})

			ctx := cmd.Context()
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			user, err := a.UserService.ByEmail(ctx, args[0])
			if err != nil {
				return err
			}

			token, err := a.AuthService.GenerateJWT(user)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
