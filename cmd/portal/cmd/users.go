package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driverportal/portal-api/internal/core/ports"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage portal identities",
}

var createInput ports.RegisterInput

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an identity (use to provision the first SUPER_ADMIN)",
	Example: `  portal users create --username root --email root@example.com \
    --password 's3cret!' --role SUPER_ADMIN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := createUser(cmd.Context(), createInput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (id %d, role %s)\n",
			res.User.Username, res.User.ID, res.User.Role)
		return nil
	},
}

// createUser registers through the authentication service so validation,
// hashing and uniqueness match the public endpoint.
func createUser(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	a, err := newApp(ctx)
	if err != nil {
		return nil, err
	}
	defer a.close(context.Background())

	return a.authService(nil).Register(ctx, in)
}

func init() {
	f := usersCreateCmd.Flags()
	f.StringVar(&createInput.Username, "username", "", "login name (3-50 characters)")
	f.StringVar(&createInput.Email, "email", "", "email address")
	f.StringVar(&createInput.Password, "password", "", "initial password")
	f.StringVar(&createInput.Role, "role", "USER", "USER, ADMIN or SUPER_ADMIN")
	_ = usersCreateCmd.MarkFlagRequired("username")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(usersCreateCmd)
}
