// Package alegra provides types, interfaces, and helpers for working with the
// Alegra e-provider API (Colombian electronic invoicing).
//
// # Overview
//
// The alegra package defines the domain types (e.g., Company, Invoice,
// Payroll, TestSet) and the interfaces for resource-oriented clients (e.g.,
// InvoicesClient, PayrollsClient). A concrete implementation of these clients
// is provided by the alegraclient package, which wires configuration,
// transport, and authentication. Most consumers should import alegraclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/einvoice-io/alegra-client/pkg/alegra"
//	  "github.com/einvoice-io/alegra-client/pkg/alegraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := alegraclient.New(&alegra.Config{
//	    APIKey:      "your-api-key",
//	    Environment: alegra.EnvironmentSandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  invoices, err := cli.Invoices().List(ctx, alegra.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Error handling
//
// Every failure surfaces as a *alegra.Error carrying a Kind discriminant plus
// the HTTP status, URL, and raw body when available. Branch on kind with the
// Is predicates:
//
//	inv, err := cli.Invoices().Get(ctx, id)
//	if alegra.IsNotFound(err) {
//	  // handle missing invoice
//	}
//
// Actions not configured for a resource fail with a configuration-kind error
// before any network call is made.
package alegra
