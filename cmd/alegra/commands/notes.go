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

// NewCreditNotesCommand creates the credit-notes command group
func NewCreditNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credit-notes",
		Aliases: []string{"credit-note", "cn"},
		Short:   "Manage credit notes",
	}

	cmd.AddCommand(newCreditNotesListCommand())
	cmd.AddCommand(newCreditNotesGetCommand())
	cmd.AddCommand(newCreditNotesCreateCommand())
	cmd.AddCommand(newCreditNotesXMLCommand())

	return cmd
}

// NewDebitNotesCommand creates the debit-notes command group
func NewDebitNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "debit-notes",
		Aliases: []string{"debit-note", "dn"},
		Short:   "Manage debit notes",
	}

	cmd.AddCommand(newDebitNotesListCommand())
	cmd.AddCommand(newDebitNotesGetCommand())
	cmd.AddCommand(newDebitNotesCreateCommand())
	cmd.AddCommand(newDebitNotesXMLCommand())

	return cmd
}

func outputNotes(notes []alegra.NoteResponse) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(notes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(notes)
	default:
		return renderNoteTable(notes)
	}
}

func renderNoteTable(notes []alegra.NoteResponse) error {
	if len(notes) == 0 {
		_, _ = os.Stdout.WriteString("No notes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Date", "Total", "Status", "CUDE")

	for _, note := range notes {
		_ = table.Append(note.ID, orDash(note.Number), orDash(note.Date),
			strconv.FormatFloat(note.Total, 'f', 2, 64),
			orDash(note.Status), orDash(note.CUDE))
	}

	_ = table.Render()

	return nil
}

func outputNote(note *alegra.NoteResponse) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(note)
	case OutputFormatYAML:
		return StandardYAMLRenderer(note)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		_ = table.Append("ID", note.ID)
		_ = table.Append("Number", orDash(note.Number))
		_ = table.Append("Date", orDash(note.Date))
		_ = table.Append("Total", strconv.FormatFloat(note.Total, 'f', 2, 64))
		_ = table.Append("Status", orDash(note.Status))
		_ = table.Append("Legal Status", orDash(note.LegalStatus))
		_ = table.Append("CUDE", orDash(note.CUDE))

		_ = table.Render()

		return nil
	}
}

func newCreditNotesListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		orderBy string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credit notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(page, perPage, orderBy, filters)
			if err != nil {
				return err
			}

			notes, err := client.CreditNotes().List(context.Background(), params)
			if err != nil {
				return err
			}

			return outputNotes(notes)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func newCreditNotesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NOTE_ID",
		Short: "Get credit note details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			note, err := client.CreditNotes().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputNote(note)
		},
	}
}

func newCreditNotesCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a credit note",
		Long:  "Submit a credit note from a JSON document ('-' reads stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			note, err := loadDocumentFile[alegra.CreditNote](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.CreditNotes().Create(context.Background(), note)
			if err != nil {
				return err
			}

			fmt.Printf("Created credit note %s (number: %s)\n", created.ID, orDash(created.Number))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON credit note document ('-' for stdin)")

	return cmd
}

func newCreditNotesXMLCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "xml NOTE_ID",
		Short: "Download the signed XML for a credit note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			file, err := client.CreditNotes().FileXML(context.Background(), args[0])
			if err != nil {
				return err
			}

			return writeXMLFile(file, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write decoded XML to a file instead of stdout")

	return cmd
}

func newDebitNotesListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		orderBy string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List debit notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := listParamsFromFlags(page, perPage, orderBy, filters)
			if err != nil {
				return err
			}

			notes, err := client.DebitNotes().List(context.Background(), params)
			if err != nil {
				return err
			}

			return outputNotes(notes)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func newDebitNotesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NOTE_ID",
		Short: "Get debit note details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			note, err := client.DebitNotes().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputNote(note)
		},
	}
}

func newDebitNotesCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a debit note",
		Long:  "Submit a debit note from a JSON document ('-' reads stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrDocumentFileRequired
			}

			note, err := loadDocumentFile[alegra.DebitNote](file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.DebitNotes().Create(context.Background(), note)
			if err != nil {
				return err
			}

			fmt.Printf("Created debit note %s (number: %s)\n", created.ID, orDash(created.Number))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON debit note document ('-' for stdin)")

	return cmd
}

func newDebitNotesXMLCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "xml NOTE_ID",
		Short: "Download the signed XML for a debit note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			file, err := client.DebitNotes().FileXML(context.Background(), args[0])
			if err != nil {
				return err
			}

			return writeXMLFile(file, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write decoded XML to a file instead of stdout")

	return cmd
}
