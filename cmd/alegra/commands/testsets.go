package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// NewTestSetsCommand creates the test-sets command group
func NewTestSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test-sets",
		Aliases: []string{"test-set", "ts"},
		Short:   "Manage DIAN habilitation test sets",
		Long:    "Run the DIAN habilitation flow required before issuing production documents",
	}

	cmd.AddCommand(newTestSetsCreateCommand())
	cmd.AddCommand(newTestSetsGetCommand())
	cmd.AddCommand(newTestSetsDeleteCommand())

	return cmd
}

func outputTestSet(testSet *alegra.TestSet) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(testSet)
	case OutputFormatYAML:
		return StandardYAMLRenderer(testSet)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Test Set ID", "Status", "Total", "Accepted", "Rejected")

		_ = table.Append(testSet.ID, orDash(testSet.TestSetID), orDash(testSet.Status),
			strconv.Itoa(testSet.Total), strconv.Itoa(testSet.Accepted), strconv.Itoa(testSet.Rejected))

		_ = table.Render()

		return nil
	}
}

func newTestSetsCreateCommand() *cobra.Command {
	var testSetID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a habilitation test set",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.TestSets().Create(context.Background(), &alegra.TestSet{
				TestSetID: testSetID,
			})
			if err != nil {
				return err
			}

			return outputTestSet(created)
		},
	}

	cmd.Flags().StringVar(&testSetID, "test-set-id", "", "DIAN-assigned test set identifier")

	return cmd
}

func newTestSetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEST_SET_ID",
		Short: "Get habilitation progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			testSet, err := client.TestSets().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputTestSet(testSet)
		},
	}
}

func newTestSetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TEST_SET_ID",
		Short: "Delete a habilitation test set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.TestSets().Delete(context.Background(), args[0])
			if err != nil {
				return err
			}

			if !deleted {
				return ErrNotDeleted
			}

			fmt.Printf("Deleted test set %s\n", args[0])

			return nil
		},
	}
}
