package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List, inspect and move invoices through their lifecycle",
	}

	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesLinesCommand())
	cmd.AddCommand(newInvoicesUpcomingCommand())
	cmd.AddCommand(newInvoicesFinalizeCommand())
	cmd.AddCommand(newInvoicesPayCommand())
	cmd.AddCommand(newInvoicesTransitionCommand("void", "Void an open invoice",
		func(id resources.InvoiceID) payapi.Binding { return endpoints.NewVoidInvoice(id) }))
	cmd.AddCommand(newInvoicesTransitionCommand("mark-uncollectible", "Mark an invoice as uncollectible",
		func(id resources.InvoiceID) payapi.Binding { return endpoints.NewMarkUncollectibleInvoice(id) }))
	cmd.AddCommand(newInvoicesTransitionCommand("send", "Email an invoice to the customer",
		func(id resources.InvoiceID) payapi.Binding { return endpoints.NewSendInvoice(id) }))
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func invoiceDetails(invoice *resources.Invoice) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", string(invoice.ID))
		_ = table.Append("Number", formatOptional(invoice.Number))
		_ = table.Append("Status", formatOptional(invoice.Status))
		_ = table.Append("Customer", expandableID(invoice.Customer))
		_ = table.Append("Collection", invoice.CollectionMethod.String())
		_ = table.Append("Total", formatAmount(invoice.Total, invoice.Currency))
		_ = table.Append("Amount Due", formatAmount(invoice.AmountDue, invoice.Currency))
		_ = table.Append("Amount Paid", formatAmount(invoice.AmountPaid, invoice.Currency))
		_ = table.Append("Due Date", formatOptionalTimestamp(invoice.DueDate))
		_ = table.Append("Period", formatTimestamp(invoice.PeriodStart)+" - "+formatTimestamp(invoice.PeriodEnd))
		_ = table.Append("Created", formatTimestamp(invoice.Created))

		if invoice.HostedInvoiceURL != nil {
			_ = table.Append("Hosted URL", *invoice.HostedInvoiceURL)
		}

		if len(invoice.Metadata) > 0 {
			_ = table.Append("Metadata", formatMetadata(invoice.Metadata))
		}
	}
}

func invoiceRows(invoices []resources.Invoice) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Number", "Status", "Customer", "Total", "Due", "Created")

		for _, invoice := range invoices {
			_ = table.Append(
				string(invoice.ID),
				formatOptional(invoice.Number),
				formatOptional(invoice.Status),
				expandableID(invoice.Customer),
				formatAmount(invoice.Total, invoice.Currency),
				formatAmount(invoice.AmountDue, invoice.Currency),
				formatTimestamp(invoice.Created),
			)
		}
	}
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID...",
		Short: "Get invoice details",
		Long:  "Display one invoice in detail, or a summary row per invoice when several IDs are given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				invoice, err := endpoints.NewRetrieveInvoice(resources.InvoiceID(args[0])).Send(cmd.Context(), client)
				if err != nil {
					return fmt.Errorf("failed to get invoice: %w", err)
				}

				return writeOutput(cmd.OutOrStdout(), invoice, invoiceDetails(invoice))
			}

			invoices, err := fetchInvoices(cmd, client, args)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), invoices, invoiceRows(invoices))
		},
	}
}

// fetchInvoices retrieves ids concurrently and reports every failure.
func fetchInvoices(cmd *cobra.Command, client payapi.Client, ids []string) ([]resources.Invoice, error) {
	builder := payapi.NewBatchBuilder()
	for _, id := range ids {
		builder.Add(id, endpoints.NewRetrieveInvoice(resources.InvoiceID(id)), &resources.Invoice{})
	}

	executor := payapi.NewBatchExecutor(client, constants.DefaultConcurrencyLimit)
	results := executor.Execute(cmd.Context(), builder.Build())

	var errs []error

	invoices := make([]resources.Invoice, 0, len(results))

	for _, result := range results {
		if !result.Success {
			errs = append(errs, fmt.Errorf("failed to get invoice %s: %w", result.ID, result.Error))

			continue
		}

		invoices = append(invoices, *result.Data.(*resources.Invoice))
	}

	return invoices, errors.Join(errs...)
}

func newInvoicesListCommand() *cobra.Command {
	var (
		customer      string
		subscription  string
		status        string
		createdAfter  string
		createdBefore string
		limit         int64
		all           bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List invoices, newest first, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := endpoints.NewListInvoice().Limit(limit)

			if customer != "" {
				list.Customer(resources.CustomerID(customer))
			}

			if subscription != "" {
				list.Subscription(resources.SubscriptionID(subscription))
			}

			if status != "" {
				value, err := parseEnum[resources.InvoiceStatus]("status", status)
				if err != nil {
					return err
				}

				list.Status(value)
			}

			created, err := parseCreatedRange(createdAfter, createdBefore)
			if err != nil {
				return err
			}

			if created != nil {
				list.Created(*created)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			invoices, err := collect(cmd, client, list.Paginate(), all)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), invoices, invoiceRows(invoices))
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "only invoices for this customer")
	cmd.Flags().StringVar(&subscription, "subscription", "", "only invoices for this subscription")
	cmd.Flags().StringVar(&status, "status", "", "draft, open, paid, uncollectible or void")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "created at or after this time")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "created before this time")
	addListFlags(cmd, &limit, &all)

	return cmd
}

// parseCreatedRange turns the --created-* flags into a range filter. It
// returns nil when neither flag is set.
func parseCreatedRange(after, before string) (*resources.RangeQueryTimestamp, error) {
	if after == "" && before == "" {
		return nil, nil
	}

	var bounds resources.RangeQuery

	if after != "" {
		ts, err := parseTimestamp(after, time.Now())
		if err != nil {
			return nil, err
		}

		bounds.GTE = &ts
	}

	if before != "" {
		ts, err := parseTimestamp(before, time.Now())
		if err != nil {
			return nil, err
		}

		bounds.LT = &ts
	}

	created := resources.RangeQueryWithin(bounds)

	return &created, nil
}

func lineItemRows(lines []resources.InvoiceLineItem) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Description", "Quantity", "Amount", "Period")

		for _, line := range lines {
			quantity := constants.NotAvailable
			if line.Quantity != nil {
				quantity = fmt.Sprintf("%d", *line.Quantity)
			}

			_ = table.Append(
				string(line.ID),
				formatOptional(line.Description),
				quantity,
				formatAmount(line.Amount, line.Currency),
				formatTimestamp(line.Period.Start)+" - "+formatTimestamp(line.Period.End),
			)
		}
	}
}

func newInvoicesLinesCommand() *cobra.Command {
	var (
		limit int64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "lines INVOICE_ID",
		Short: "List invoice line items",
		Long:  "List the line items of an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			list := endpoints.NewListLinesInvoice(resources.InvoiceID(args[0])).Limit(limit)

			lines, err := collect(cmd, client, list.Paginate(), all)
			if err != nil {
				return fmt.Errorf("failed to list invoice lines: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), lines, lineItemRows(lines))
		},
	}

	addListFlags(cmd, &limit, &all)

	return cmd
}

func newInvoicesUpcomingCommand() *cobra.Command {
	var (
		customer     string
		subscription string
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Preview the next invoice",
		Long:  "Preview the invoice that will be created for a customer or subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if customer == "" && subscription == "" {
				return fmt.Errorf("%w: --customer or --subscription", ErrMissingFlag)
			}

			upcoming := endpoints.NewUpcomingInvoice()
			if customer != "" {
				upcoming.Customer(resources.CustomerID(customer))
			}

			if subscription != "" {
				upcoming.Subscription(resources.SubscriptionID(subscription))
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			invoice, err := upcoming.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to preview invoice: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), invoice, invoiceDetails(invoice))
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer to preview")
	cmd.Flags().StringVar(&subscription, "subscription", "", "subscription to preview")

	return cmd
}

func newInvoicesFinalizeCommand() *cobra.Command {
	var autoAdvance bool

	cmd := &cobra.Command{
		Use:   "finalize INVOICE_ID",
		Short: "Finalize a draft invoice",
		Long:  "Finalize a draft invoice so that it can be paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			finalize := endpoints.NewFinalizeInvoice(resources.InvoiceID(args[0]))
			if cmd.Flags().Changed("auto-advance") {
				finalize.AutoAdvance(autoAdvance)
			}

			return runInvoiceTransition(cmd, "finalize", finalize)
		},
	}

	cmd.Flags().BoolVar(&autoAdvance, "auto-advance", false, "let the server collect the invoice automatically")

	return cmd
}

func newInvoicesPayCommand() *cobra.Command {
	var (
		paymentMethod string
		paidOutOfBand bool
		offSession    bool
		forgive       bool
	)

	cmd := &cobra.Command{
		Use:   "pay INVOICE_ID",
		Short: "Pay an invoice",
		Long:  "Attempt payment of an open invoice, or record a payment made outside the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pay := endpoints.NewPayInvoice(resources.InvoiceID(args[0]))

			if paymentMethod != "" {
				pay.PaymentMethod(resources.PaymentMethodID(paymentMethod))
			}

			if cmd.Flags().Changed("paid-out-of-band") {
				pay.PaidOutOfBand(paidOutOfBand)
			}

			if cmd.Flags().Changed("off-session") {
				pay.OffSession(offSession)
			}

			if cmd.Flags().Changed("forgive") {
				pay.Forgive(forgive)
			}

			return runInvoiceTransition(cmd, "pay", pay)
		},
	}

	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method to charge")
	cmd.Flags().BoolVar(&paidOutOfBand, "paid-out-of-band", false, "mark as paid outside the API")
	cmd.Flags().BoolVar(&offSession, "off-session", false, "the customer is not present")
	cmd.Flags().BoolVar(&forgive, "forgive", false, "accept a partial payment as full")

	return cmd
}

func newInvoicesTransitionCommand(action, short string, binding func(resources.InvoiceID) payapi.Binding) *cobra.Command {
	return &cobra.Command{
		Use:   action + " INVOICE_ID",
		Short: short,
		Long:  short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoiceTransition(cmd, action, binding(resources.InvoiceID(args[0])))
		},
	}
}

func runInvoiceTransition(cmd *cobra.Command, action string, binding payapi.Binding) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	invoice, err := payapi.Send[resources.Invoice](cmd.Context(), client, binding.Build())
	if err != nil {
		return fmt.Errorf("failed to %s invoice: %w", action, err)
	}

	return writeOutput(cmd.OutOrStdout(), invoice, invoiceDetails(invoice))
}

func newInvoicesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete a draft invoice",
		Long:  "Permanently delete a draft invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete invoice '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := endpoints.NewDeleteInvoice(resources.InvoiceID(args[0])).Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted invoice '%s'\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
