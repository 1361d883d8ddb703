package commands

import (
	"fmt"

	"github.com/ncobase/yatube/core/user/data/repository"
	"github.com/ncobase/yatube/core/user/service"
	"github.com/ncobase/yatube/core/user/structs"
	"github.com/spf13/cobra"
)

func newUserCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(
		newUserCreateCommand(opts),
		newUserDeleteCommand(opts),
	)
	return cmd
}

func newUserCreateCommand(opts *options) *cobra.Command {
	body := &structs.CreateUserBody{}

	cmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			body.Username = args[0]
			users := service.NewUserService(repository.NewUserRepository(e.data.DB), e.logger)
			user, err := users.Create(cmd.Context(), body)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&body.Password, "password", "p", "", "account password, at least 8 characters")
	cmd.Flags().StringVar(&body.Email, "email", "", "email address")
	cmd.Flags().StringVar(&body.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&body.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [username]",
		Short: "Delete a user account and all of its posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			users := service.NewUserService(repository.NewUserRepository(e.data.DB), e.logger)
			if err := users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		},
	}
}
