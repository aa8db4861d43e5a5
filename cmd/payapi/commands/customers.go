package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "Create, inspect, update and delete customers",
	}

	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func customerDetails(customer *resources.Customer) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		balance := strconv.FormatInt(customer.Balance, 10)
		if customer.Currency != nil {
			balance = formatAmount(customer.Balance, *customer.Currency)
		}

		table.Header("Property", "Value")
		_ = table.Append("ID", string(customer.ID))
		_ = table.Append("Name", formatOptional(customer.Name))
		_ = table.Append("Email", formatOptional(customer.Email))
		_ = table.Append("Phone", formatOptional(customer.Phone))
		_ = table.Append("Description", formatOptional(customer.Description))
		_ = table.Append("Balance", balance)
		_ = table.Append("Tax Exempt", formatOptional(customer.TaxExempt))
		_ = table.Append("Test Clock", expandableID(customer.TestClock))
		_ = table.Append("Created", formatTimestamp(customer.Created))

		if len(customer.Metadata) > 0 {
			_ = table.Append("Metadata", formatMetadata(customer.Metadata))
		}
	}
}

func customerRows(customers []resources.CustomerOrDeleted) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Email", "Created", "Deleted")

		for _, entry := range customers {
			if entry.IsDeleted() {
				_ = table.Append(entry.ObjectID(), "", "", "", "yes")

				continue
			}

			customer := entry.Customer
			_ = table.Append(
				string(customer.ID),
				formatOptional(customer.Name),
				formatOptional(customer.Email),
				formatTimestamp(customer.Created),
				"no",
			)
		}
	}
}

// customerFlags are the settable fields shared by create and update.
type customerFlags struct {
	name        string
	email       string
	phone       string
	description string
	balance     int64
	taxExempt   string
	metadata    []string
}

func (f *customerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "customer name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().Int64Var(&f.balance, "balance", 0, "balance in the smallest currency unit; negative is a credit")
	cmd.Flags().StringVar(&f.taxExempt, "tax-exempt", "", "none, exempt or reverse")
	cmd.Flags().StringArrayVar(&f.metadata, "metadata", nil, "metadata as key=value, key= clears (repeatable)")
}

// customerSetter is implemented by both the create and update bindings.
type customerSetter[B any] interface {
	Name(name string) B
	Email(email string) B
	Phone(phone string) B
	Description(description string) B
	Balance(balance int64) B
	TaxExempt(taxExempt resources.TaxExempt) B
	Metadata(metadata resources.MetadataParams) B
}

// applyCustomerFlags sets only the flags the user passed, so that an update
// leaves every other field unchanged.
func applyCustomerFlags[B any](cmd *cobra.Command, flags *customerFlags, binding customerSetter[B]) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		binding.Name(flags.name)
	}

	if changed("email") {
		binding.Email(flags.email)
	}

	if changed("phone") {
		binding.Phone(flags.phone)
	}

	if changed("description") {
		binding.Description(flags.description)
	}

	if changed("balance") {
		binding.Balance(flags.balance)
	}

	if changed("tax-exempt") {
		value, err := parseEnum[resources.TaxExempt]("tax-exempt", flags.taxExempt)
		if err != nil {
			return err
		}

		binding.TaxExempt(value)
	}

	metadata, err := parseMetadata(flags.metadata)
	if err != nil {
		return err
	}

	if metadata != nil {
		binding.Metadata(metadata)
	}

	return nil
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		flags     customerFlags
		testClock string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer, optionally attached to a test clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			create := endpoints.NewCreateCustomer()

			err := applyCustomerFlags[*endpoints.CreateCustomer](cmd, &flags, create)
			if err != nil {
				return err
			}

			if testClock != "" {
				create.TestClock(resources.TestClockID(testClock))
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			customer, err := create.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), customer, customerDetails(customer))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&testClock, "test-clock", "", "attach the customer to this test clock")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID...",
		Short: "Get customer details",
		Long:  "Display one customer in detail, or a summary row per customer when several IDs are given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			customers, err := fetchCustomers(cmd, client, args)
			if err != nil {
				return err
			}

			if len(customers) == 1 && !customers[0].IsDeleted() {
				return writeOutput(cmd.OutOrStdout(), customers[0], customerDetails(customers[0].Customer))
			}

			return writeOutput(cmd.OutOrStdout(), customers, customerRows(customers))
		},
	}
}

// fetchCustomers retrieves ids concurrently. The first failure cancels the
// remaining requests.
func fetchCustomers(cmd *cobra.Command, client payapi.Client, ids []string) ([]resources.CustomerOrDeleted, error) {
	customers := make([]resources.CustomerOrDeleted, len(ids))

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for index, id := range ids {
		group.Go(func() error {
			customer, err := endpoints.NewRetrieveCustomer(resources.CustomerID(id)).Send(ctx, client)
			if err != nil {
				return fmt.Errorf("failed to get customer %s: %w", id, err)
			}

			customers[index] = *customer

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return customers, nil
}

func newCustomersListCommand() *cobra.Command {
	var (
		email     string
		testClock string
		limit     int64
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := endpoints.NewListCustomer().Limit(limit)

			if email != "" {
				list.Email(email)
			}

			if testClock != "" {
				list.TestClock(resources.TestClockID(testClock))
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			customers, err := collect(cmd, client, list.Paginate(), all)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			rows := make([]resources.CustomerOrDeleted, len(customers))
			for i := range customers {
				rows[i] = resources.CustomerOrDeleted{Customer: &customers[i]}
			}

			return writeOutput(cmd.OutOrStdout(), customers, customerRows(rows))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "only customers with this exact email")
	cmd.Flags().StringVar(&testClock, "test-clock", "", "only customers on this test clock")
	addListFlags(cmd, &limit, &all)

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Update the given fields of a customer. Fields without a flag are left unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := endpoints.NewUpdateCustomer(resources.CustomerID(args[0]))

			err := applyCustomerFlags[*endpoints.UpdateCustomer](cmd, &flags, update)
			if err != nil {
				return err
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			customer, err := update.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), customer, customerDetails(customer))
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Permanently delete a customer and cancel their subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete customer '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := endpoints.NewDeleteCustomer(resources.CustomerID(args[0])).Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted customer '%s'\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
