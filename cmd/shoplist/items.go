package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pantryhq/shoplist/internal/config"
	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/pkg/board"
)

func newItemsCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print the unchecked items grouped by store and section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			list, err := cl.ListItems(cmd.Context())
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), *list)
			return nil
		},
	}
	cfg.AddClientFlags(cmd.Flags())
	return cmd
}

func printList(w io.Writer, list models.ItemList) {
	header := color.New(color.Bold).SprintFunc()
	key := color.New(color.Faint).SprintFunc()
	reg := board.BuildRegistry(list)
	count := func(k board.ContainerKey) string {
		return key(fmt.Sprintf("%s (%d)", k, len(reg.Items(k))))
	}

	printItems := func(indent string, items []models.Item) {
		if len(items) == 0 {
			fmt.Fprintf(w, "%s%s\n", indent, key("(empty)"))
		}
		for _, item := range items {
			fmt.Fprintf(w, "%s%s %s\n", indent, color.CyanString("#%d", item.ID), item.Name)
		}
	}

	fmt.Fprintf(w, "%s %s\n", header("Unassigned"), count(board.GlobalKey))
	printItems("  ", list.Unassigned)

	for _, s := range list.Stores {
		fmt.Fprintf(w, "%s %s\n", header(s.Name), count(board.EncodeKey(&s.ID, nil)))
		printItems("  ", s.Unassigned)
		for _, sec := range s.Sections {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString(sec.Name), count(board.EncodeKey(&s.ID, &sec.ID)))
			printItems("    ", sec.Items)
		}
	}

	fmt.Fprintf(w, "\n%d items\n", reg.Total())
}

func newAddCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item, optionally to a store or a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeID, err := optionalID(cmd, "store")
			if err != nil {
				return err
			}
			sectionID, err := optionalID(cmd, "section")
			if err != nil {
				return err
			}

			cl, err := newClient(cfg)
			if err != nil {
				return err
			}
			item, err := cl.CreateItem(cmd.Context(), models.CreateItemRequest{
				Name:      args[0],
				StoreID:   storeID,
				SectionID: sectionID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added %s\n", color.GreenString("✓"), color.CyanString("#%d", item.ID))
			return nil
		},
	}
	cmd.Flags().Int64("store", 0, "store id")
	cmd.Flags().Int64("section", 0, "section id")
	cfg.AddClientFlags(cmd.Flags())
	return cmd
}

func newMoveCommand(cfg *config.Configuration) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "move <item-id>",
		Short: "Move an item to index of a store, a section or the unassigned list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			storeID, err := optionalID(cmd, "store")
			if err != nil {
				return err
			}
			sectionID, err := optionalID(cmd, "section")
			if err != nil {
				return err
			}
			if sectionID != nil && storeID == nil {
				return fmt.Errorf("--section needs --store")
			}

			ctx := cmd.Context()
			b, closeFn, err := openBoard(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			if _, ok := b.Index().Get(id); !ok {
				return fmt.Errorf("item %d is not on the list", id)
			}
			target := board.EncodeKey(storeID, sectionID)
			if !b.Registry().Has(target) {
				return fmt.Errorf("unknown container %s", target)
			}

			future := b.Place(id, target, index)
			if future == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "item already in place")
				return nil
			}
			if err := waitCommit(ctx, future); err != nil {
				return err
			}

			key, pos, _ := b.Registry().Position(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d now at %s[%d]\n", color.GreenString("✓"), id, key, pos)
			return nil
		},
	}
	cmd.Flags().Int64("store", 0, "target store id, omit for the unassigned list")
	cmd.Flags().Int64("section", 0, "target section id")
	cmd.Flags().IntVar(&index, "index", 0, "position inside the target container, clamped to its length")
	cfg.AddClientFlags(cmd.Flags())
	return cmd
}

func newCheckCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <item-id>...",
		Short: "Check items off the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
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

			for _, id := range ids {
				b.Checker().Check(id)
			}
			if err := b.Checker().Flush(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s checked %d items, %d left\n", color.GreenString("✓"), len(ids), b.Registry().Total())
			return nil
		},
	}
	cfg.AddClientFlags(cmd.Flags())
	return cmd
}
