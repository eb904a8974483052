package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "read the value of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			value, found, err := cl.Get(ctx, []byte(args[0]))
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("key %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(value))
			return nil
		})
	},
}

var putCmd = &cobra.Command{
	Use:   "put KEY VALUE",
	Short: "write a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			return cl.Put(ctx, []byte(args[0]), []byte(args[1]))
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "remove a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			existed, err := cl.Delete(ctx, []byte(args[0]))
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintf(cmd.OutOrStdout(), "key %q did not exist\n", args[0])
			}
			return nil
		})
	},
}

var (
	scanPrefix   string
	scanKeysOnly bool
	scanLimit    int
	scanBatch    int
)

var scanCmd = &cobra.Command{
	Use:   "scan [START [STOP]]",
	Short: "list rows of [START, STOP) across entity groups",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var start, stop []byte
		if len(args) > 0 {
			start = []byte(args[0])
		}
		if len(args) > 1 {
			stop = []byte(args[1])
		}
		var filter *protos.FilterSpec
		if scanPrefix != "" || scanKeysOnly {
			filter = &protos.FilterSpec{KeyPrefix: []byte(scanPrefix), KeysOnly: scanKeysOnly}
		}

		return withClient(func(ctx context.Context, cl *router.Client) error {
			s := cl.Scan(start, stop, filter, scanBatch)
			defer func() { _ = s.Close(ctx) }()

			for n := 0; scanLimit <= 0 || n < scanLimit; n++ {
				row, ok, err := s.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if scanKeysOnly {
					fmt.Fprintln(cmd.OutOrStdout(), string(row.Key))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", row.Key, row.Value)
				}
			}
			return nil
		})
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanPrefix, "prefix", "", "only keys with this prefix")
	scanCmd.Flags().BoolVar(&scanKeysOnly, "keys-only", false, "do not fetch values")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "stop after this many rows")
	scanCmd.Flags().IntVar(&scanBatch, "batch", 0, "rows per Next call")
}
