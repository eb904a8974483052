package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router"
)

func printGroup(w io.Writer, g *protos.EntityGroupInfo) {
	upper := string(g.UpperBound)
	if upper == "" {
		upper = "+inf"
	}
	fmt.Fprintf(w, "%s\t[%q, %s)\t%s\t%s\n", g.Id, g.LowerBound, upper, g.ServerId, g.ServerAddress)
}

func printModify(w io.Writer, reply *protos.ModifyReply, err error) error {
	if err != nil {
		return egerror.FromGRPC(err)
	}
	fmt.Fprintln(w, reply.Operation)
	return nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve KEY",
	Short: "show the entity group and server owning a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			loc, err := cl.Location.ResolveLocation(ctx, []byte(args[0]))
			if err != nil {
				return err
			}
			printGroup(cmd.OutOrStdout(), loc.ToProto())
			return nil
		})
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "list entity groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().ListEntityGroups(ctx, &protos.ListEntityGroupsRequest{})
			if err != nil {
				return egerror.FromGRPC(err)
			}
			for _, g := range reply.Groups {
				printGroup(cmd.OutOrStdout(), g)
			}
			return nil
		})
	},
}

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "list registered entity group servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().ListServers(ctx, &protos.ListServersRequest{})
			if err != nil {
				return egerror.FromGRPC(err)
			}
			for _, s := range reply.Servers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Id, s.Address)
			}
			return nil
		})
	},
}

var createUpper string

var createGroupCmd = &cobra.Command{
	Use:   "create-group ID LOWER SERVER",
	Short: "create an entity group [LOWER, --upper) on SERVER",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := &protos.EntityGroupInfo{
			Id:         args[0],
			LowerBound: []byte(args[1]),
			ServerId:   args[2],
		}
		if createUpper != "" {
			group.UpperBound = []byte(createUpper)
		}
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().CreateEntityGroup(ctx, &protos.CreateEntityGroupRequest{Group: group})
			return printModify(cmd.OutOrStdout(), reply, err)
		})
	},
}

var splitNewID string

var splitCmd = &cobra.Command{
	Use:   "split ID BOUND",
	Short: "split an entity group at BOUND",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().SplitEntityGroup(ctx, &protos.SplitEntityGroupRequest{
				SourceId: args[0],
				NewId:    splitNewID,
				Bound:    []byte(args[1]),
			})
			return printModify(cmd.OutOrStdout(), reply, err)
		})
	},
}

var uniteCmd = &cobra.Command{
	Use:   "unite LEFT RIGHT",
	Short: "merge two adjacent entity groups",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().UniteEntityGroups(ctx, &protos.UniteEntityGroupsRequest{
				LeftId:  args[0],
				RightId: args[1],
			})
			return printModify(cmd.OutOrStdout(), reply, err)
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move ID SERVER",
	Short: "move an entity group and its rows to another server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, cl *router.Client) error {
			reply, err := cl.Location.Service().MoveEntityGroup(ctx, &protos.MoveEntityGroupRequest{
				Id:       args[0],
				ServerId: args[1],
			})
			return printModify(cmd.OutOrStdout(), reply, err)
		})
	},
}

func init() {
	createGroupCmd.Flags().StringVar(&createUpper, "upper", "", "exclusive upper bound, unbounded when empty")
	splitCmd.Flags().StringVar(&splitNewID, "new-id", "", "id of the upper part, generated when empty")
}
