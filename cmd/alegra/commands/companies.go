package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// NewCompaniesCommand creates the companies command group
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage provider companies",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())
	cmd.AddCommand(newCompaniesCreateCommand())
	cmd.AddCommand(newCompaniesUpdateCommand())

	return cmd
}

func outputCompanies(companies []alegra.Company) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(companies)
	case OutputFormatYAML:
		return StandardYAMLRenderer(companies)
	default:
		return renderCompanyTable(companies)
	}
}

func renderCompanyTable(companies []alegra.Company) error {
	if len(companies) == 0 {
		_, _ = os.Stdout.WriteString("No companies found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Identification", "Email", "Certificate")

	for _, company := range companies {
		_ = table.Append(company.ID, company.Name, orDash(company.Identification),
			orDash(company.Email), orDash(company.CertificateStatus))
	}

	_ = table.Render()

	return nil
}

func newCompaniesListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		orderBy string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List provider companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(page, perPage, orderBy, filters)
			if err != nil {
				return err
			}

			companies, err := client.Companies().List(context.Background(), params)
			if err != nil {
				return err
			}

			return outputCompanies(companies)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func newCompaniesGetCommand() *cobra.Command {
	var own bool

	cmd := &cobra.Command{
		Use:   "get COMPANY_ID",
		Short: "Get company details",
		Long:  "Display a provider company. With --own the account's own company record is fetched instead.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var company *alegra.Company
			if own {
				company, err = client.Company().Get(context.Background(), args[0])
			} else {
				company, err = client.Companies().Get(context.Background(), args[0])
			}

			if err != nil {
				return err
			}

			return outputCompanies([]alegra.Company{*company})
		},
	}

	cmd.Flags().BoolVar(&own, "own", false, "fetch the account's own company record")

	return cmd
}

func newCompaniesCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a provider company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			company, err := loadDocumentFile[alegra.Company](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Companies().Create(context.Background(), company)
			if err != nil {
				return err
			}

			fmt.Printf("Created company %s (%s)\n", created.ID, created.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON company document ('-' for stdin)")

	return cmd
}

func newCompaniesUpdateCommand() *cobra.Command {
	var (
		file string
		own  bool
	)

	cmd := &cobra.Command{
		Use:   "update COMPANY_ID",
		Short: "Update a provider company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			company, err := loadDocumentFile[alegra.Company](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var updated *alegra.Company
			if own {
				updated, err = client.Company().Update(context.Background(), args[0], company)
			} else {
				updated, err = client.Companies().Update(context.Background(), args[0], company)
			}

			if err != nil {
				return err
			}

			fmt.Printf("Updated company %s (%s)\n", updated.ID, updated.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON company document ('-' for stdin)")
	cmd.Flags().BoolVar(&own, "own", false, "update the account's own company record")

	return cmd
}
