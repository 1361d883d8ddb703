package commands

import (
	"fmt"

	"github.com/ncobase/yatube/core/group/data/repository"
	"github.com/ncobase/yatube/core/group/service"
	"github.com/ncobase/yatube/core/group/structs"
	"github.com/spf13/cobra"
)

func newGroupCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(
		newGroupCreateCommand(opts),
		newGroupDeleteCommand(opts),
	)
	return cmd
}

func newGroupCreateCommand(opts *options) *cobra.Command {
	body := &structs.CreateGroupBody{}

	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			body.Title = args[0]
			groups := service.NewGroupService(repository.NewGroupRepository(e.data.DB), e.logger)
			group, err := groups.Create(cmd.Context(), body)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created group %q at /group/%s/\n", group.Title, group.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&body.Slug, "slug", "s", "", "URL slug, derived from the title when empty")
	cmd.Flags().StringVarP(&body.Description, "description", "d", "", "group description")
	return cmd
}

func newGroupDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [slug]",
		Short: "Delete a group, keeping its posts without a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			groups := service.NewGroupService(repository.NewGroupRepository(e.data.DB), e.logger)
			if err := groups.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted group %s\n", args[0])
			return nil
		},
	}
}
