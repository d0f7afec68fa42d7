package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// NewInvoicesCommand creates the invoices command group
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage electronic invoices",
		Long:    "Create, list, and inspect electronic invoices and download their signed XML",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesXMLCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		orderBy string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(page, perPage, orderBy, filters)
			if err != nil {
				return err
			}

			invoices, err := client.Invoices().List(context.Background(), params)
			if err != nil {
				return err
			}

			return outputInvoices(invoices)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func outputInvoices(invoices []alegra.InvoiceResponse) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(invoices)
	case OutputFormatYAML:
		return StandardYAMLRenderer(invoices)
	default:
		return renderInvoiceTable(invoices)
	}
}

func renderInvoiceTable(invoices []alegra.InvoiceResponse) error {
	if len(invoices) == 0 {
		_, _ = os.Stdout.WriteString("No invoices found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Date", "Total", "Status", "Legal Status")

	for _, invoice := range invoices {
		_ = table.Append(invoice.ID, orDash(invoice.Number), orDash(invoice.Date),
			strconv.FormatFloat(invoice.Total, 'f', 2, 64),
			orDash(invoice.Status), orDash(invoice.LegalStatus))
	}

	_ = table.Render()

	return nil
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(invoice)
			case OutputFormatYAML:
				return StandardYAMLRenderer(invoice)
			default:
				return renderInvoiceDetail(invoice)
			}
		},
	}
}

func renderInvoiceDetail(invoice *alegra.InvoiceResponse) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", invoice.ID)
	_ = table.Append("Number", orDash(invoice.Number))
	_ = table.Append("Date", orDash(invoice.Date))
	_ = table.Append("Total", strconv.FormatFloat(invoice.Total, 'f', 2, 64))
	_ = table.Append("Status", orDash(invoice.Status))
	_ = table.Append("Legal Status", orDash(invoice.LegalStatus))
	_ = table.Append("CUFE", orDash(invoice.CUFE))

	if invoice.Customer != nil {
		_ = table.Append("Customer", invoice.Customer.Name)
	}

	_ = table.Render()

	return nil
}

func newInvoicesCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Long:  "Submit an invoice for issuance from a JSON document ('-' reads stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			invoice, err := loadDocumentFile[alegra.Invoice](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Invoices().Create(context.Background(), invoice)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(created)
			case OutputFormatYAML:
				return StandardYAMLRenderer(created)
			default:
				fmt.Printf("Created invoice %s (number: %s, status: %s)\n",
					created.ID, orDash(created.Number), orDash(created.Status))

				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON invoice document ('-' for stdin)")

	return cmd
}

func newInvoicesXMLCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "xml INVOICE_ID",
		Short: "Download the signed XML for an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			file, err := client.Invoices().FileXML(context.Background(), args[0])
			if err != nil {
				return err
			}

			return writeXMLFile(file, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write decoded XML to a file instead of stdout")

	return cmd
}

// writeXMLFile decodes a base64 file payload and writes it to the given path,
// or to stdout when no path is set.
func writeXMLFile(file *alegra.FileResponse, outFile string) error {
	content, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return fmt.Errorf("decoding file content: %w", err)
	}

	if outFile == "" {
		_, err = os.Stdout.Write(content)

		return err
	}

	if err := os.WriteFile(outFile, content, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", outFile, len(content))

	return nil
}
