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

// NewPayrollsCommand creates the payrolls command group
func NewPayrollsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payrolls",
		Aliases: []string{"payroll"},
		Short:   "Manage electronic payroll documents",
		Long:    "Create, list, replace, and cancel electronic payroll documents",
	}

	cmd.AddCommand(newPayrollsListCommand())
	cmd.AddCommand(newPayrollsGetCommand())
	cmd.AddCommand(newPayrollsCreateCommand())
	cmd.AddCommand(newPayrollsUpdateCommand())
	cmd.AddCommand(newPayrollsReplaceCommand())
	cmd.AddCommand(newPayrollsCancelCommand())

	return cmd
}

func outputPayrolls(payrolls []alegra.Payroll) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(payrolls)
	case OutputFormatYAML:
		return StandardYAMLRenderer(payrolls)
	default:
		return renderPayrollTable(payrolls)
	}
}

func renderPayrollTable(payrolls []alegra.Payroll) error {
	if len(payrolls) == 0 {
		_, _ = os.Stdout.WriteString("No payrolls found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Employee", "Total", "Status", "CUNE")

	for _, payroll := range payrolls {
		employee := NotAvailable
		if payroll.Employee != nil {
			employee = payroll.Employee.FirstName + " " + payroll.Employee.LastName
		}

		_ = table.Append(payroll.ID, orDash(payroll.Number), employee,
			strconv.FormatFloat(payroll.Total, 'f', 2, 64),
			orDash(payroll.Status), orDash(payroll.CUNE))
	}

	_ = table.Render()

	return nil
}

func outputPayroll(payroll *alegra.Payroll) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(payroll)
	case OutputFormatYAML:
		return StandardYAMLRenderer(payroll)
	default:
		return renderPayrollTable([]alegra.Payroll{*payroll})
	}
}

func newPayrollsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		orderBy string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payrolls",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(page, perPage, orderBy, filters)
			if err != nil {
				return err
			}

			payrolls, err := client.Payrolls().List(context.Background(), params)
			if err != nil {
				return err
			}

			return outputPayrolls(payrolls)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func newPayrollsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYROLL_ID",
		Short: "Get payroll details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payroll, err := client.Payrolls().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputPayroll(payroll)
		},
	}
}

func newPayrollsCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payroll document",
		Long:  "Submit a payroll document from a JSON file ('-' reads stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			payroll, err := loadDocumentFile[alegra.Payroll](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Payrolls().Create(context.Background(), payroll)
			if err != nil {
				return err
			}

			fmt.Printf("Created payroll %s (number: %s, status: %s)\n",
				created.ID, orDash(created.Number), orDash(created.Status))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON payroll document ('-' for stdin)")

	return cmd
}

func newPayrollsUpdateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update PAYROLL_ID",
		Short: "Update a payroll document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			payroll, err := loadDocumentFile[alegra.Payroll](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			updated, err := client.Payrolls().Update(context.Background(), args[0], payroll)
			if err != nil {
				return err
			}

			fmt.Printf("Updated payroll %s (status: %s)\n", updated.ID, orDash(updated.Status))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON payroll document ('-' for stdin)")

	return cmd
}

func newPayrollsReplaceCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "replace PAYROLL_ID",
		Short: "Replace an issued payroll document",
		Long:  "Issue a replacement document for a payroll already reported to DIAN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			payroll, err := loadDocumentFile[alegra.Payroll](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			replaced, err := client.Payrolls().Replace(context.Background(), args[0], payroll)
			if err != nil {
				return err
			}

			fmt.Printf("Replaced payroll %s with %s (status: %s)\n",
				args[0], replaced.ID, orDash(replaced.Status))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON replacement document ('-' for stdin)")

	return cmd
}

func newPayrollsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYROLL_ID",
		Short: "Cancel an issued payroll document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			cancelled, err := client.Payrolls().Cancel(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Cancelled payroll %s (status: %s)\n", cancelled.ID, orDash(cancelled.Status))

			return nil
		},
	}
}
