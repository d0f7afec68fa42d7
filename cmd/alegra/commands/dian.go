package commands

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// NewDianCommand creates the dian command group
func NewDianCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dian",
		Short: "Inspect DIAN catalog resources",
	}

	cmd.AddCommand(newDianListCommand())

	return cmd
}

func newDianListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DIAN catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(0, 0, "", filters)
			if err != nil {
				return err
			}

			resources, err := client.Dian().List(context.Background(), params)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(resources)
			case OutputFormatYAML:
				return StandardYAMLRenderer(resources)
			default:
				return renderDianTable(resources)
			}
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func renderDianTable(resources []alegra.DianResource) error {
	if len(resources) == 0 {
		_, _ = os.Stdout.WriteString("No catalog entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Code", "Name", "Type", "Description")

	for _, resource := range resources {
		_ = table.Append(resource.Code, resource.Name, orDash(resource.Type), orDash(resource.Description))
	}

	_ = table.Render()

	return nil
}
