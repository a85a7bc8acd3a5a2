package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pantryhq/shoplist/internal/config"
)

func newStoresCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Manage stores",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			stores, err := cl.ListStores(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range stores {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.CyanString("#%d", s.ID), s.Name)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			store, err := cl.CreateStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s store %s created\n", color.GreenString("✓"), color.CyanString("#%d", store.ID))
			return nil
		},
	}

	for _, c := range []*cobra.Command{list, add} {
		cfg.AddClientFlags(c.Flags())
		cmd.AddCommand(c)
	}
	return cmd
}

func newSectionsCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Manage the sections of a store",
	}

	list := &cobra.Command{
		Use:   "list <store-id>",
		Short: "List the sections of a store in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			sections, err := cl.ListSections(cmd.Context(), storeID)
			if err != nil {
				return err
			}
			for i, s := range sections {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s\n", i+1, color.CyanString("#%d", s.ID), s.Name)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <store-id> <name>",
		Short: "Append a section to a store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			section, err := cl.CreateSection(cmd.Context(), storeID, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s section %s created\n", color.GreenString("✓"), color.CyanString("#%d", section.ID))
			return nil
		},
	}

	reorder := &cobra.Command{
		Use:   "reorder <store-id> <section-id>...",
		Short: "Set the order of the sections of a store",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ids := make([]int64, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			ctx := cmd.Context()
			b, closeFn, err := openBoard(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			r, err := b.Sections(ctx, storeID)
			if err != nil {
				return err
			}
			future, err := r.ReorderTo(ids)
			if err != nil {
				return err
			}
			if err := waitCommit(ctx, future); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s sections now %v\n", color.GreenString("✓"), r.Sequence().IDs())
			return nil
		},
	}

	for _, c := range []*cobra.Command{list, add, reorder} {
		cfg.AddClientFlags(c.Flags())
		cmd.AddCommand(c)
	}
	return cmd
}
