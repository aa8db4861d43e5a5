package commands

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// NewSetupIntentsCommand creates the setup-intents command group.
func NewSetupIntentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup-intents",
		Aliases: []string{"setup-intent", "si"},
		Short:   "Manage setup intents",
		Long:    "Create, confirm and cancel setup intents that save payment methods for later use",
	}

	cmd.AddCommand(newSetupIntentsCreateCommand())
	cmd.AddCommand(newSetupIntentsGetCommand())
	cmd.AddCommand(newSetupIntentsListCommand())
	cmd.AddCommand(newSetupIntentsConfirmCommand())
	cmd.AddCommand(newSetupIntentsCancelCommand())
	cmd.AddCommand(newSetupIntentsVerifyCommand())

	return cmd
}

func setupIntentDetails(intent *resources.SetupIntent) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", string(intent.ID))
		_ = table.Append("Status", intent.Status.String())
		_ = table.Append("Usage", intent.Usage.String())
		_ = table.Append("Customer", expandableID(intent.Customer))
		_ = table.Append("Payment Method", expandableID(intent.PaymentMethod))
		_ = table.Append("Payment Method Types", joinEnums(intent.PaymentMethodTypes))
		_ = table.Append("Created", formatTimestamp(intent.Created))

		if intent.NextAction != nil {
			_ = table.Append("Next Action", intent.NextAction.Type.String())
		}

		if intent.LastSetupError != nil {
			_ = table.Append("Last Error", formatOptional(intent.LastSetupError.Message))
		}

		if intent.CancellationReason != nil {
			_ = table.Append("Cancellation Reason", intent.CancellationReason.String())
		}
	}
}

func setupIntentRows(intents []resources.SetupIntent) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Status", "Usage", "Customer", "Payment Method", "Created")

		for _, intent := range intents {
			_ = table.Append(
				string(intent.ID),
				intent.Status.String(),
				intent.Usage.String(),
				expandableID(intent.Customer),
				expandableID(intent.PaymentMethod),
				formatTimestamp(intent.Created),
			)
		}
	}
}

func joinEnums[T ~string](values []T) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}

	return strings.Join(parts, ", ")
}

func newSetupIntentsCreateCommand() *cobra.Command {
	var (
		customer           string
		description        string
		paymentMethod      string
		paymentMethodTypes []string
		usage              string
		returnURL          string
		metadata           []string
		confirmNow         bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a setup intent",
		Long:  "Create a setup intent, optionally confirming it immediately",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			create := endpoints.NewCreateSetupIntent()

			if customer != "" {
				create.Customer(resources.CustomerID(customer))
			}

			if description != "" {
				create.Description(description)
			}

			if paymentMethod != "" {
				create.PaymentMethod(resources.PaymentMethodID(paymentMethod))
			}

			if len(paymentMethodTypes) > 0 {
				types, err := parseEnums[resources.PaymentMethodType]("payment-method-types", paymentMethodTypes)
				if err != nil {
					return err
				}

				create.PaymentMethodTypes(types)
			}

			if usage != "" {
				value, err := parseEnum[resources.SetupIntentUsage]("usage", usage)
				if err != nil {
					return err
				}

				create.Usage(value)
			}

			if returnURL != "" {
				create.ReturnURL(returnURL)
			}

			params, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			if params != nil {
				create.Metadata(params)
			}

			if confirmNow {
				create.Confirm(true)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			intent, err := create.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to create setup intent: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intent, setupIntentDetails(intent))
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer to attach the payment method to")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method to set up")
	cmd.Flags().StringSliceVar(&paymentMethodTypes, "payment-method-types", nil, "allowed payment method types (comma-separated)")
	cmd.Flags().StringVar(&usage, "usage", "", "on_session or off_session")
	cmd.Flags().StringVar(&returnURL, "return-url", "", "where to send the customer after authentication")
	cmd.Flags().StringArrayVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	cmd.Flags().BoolVar(&confirmNow, "confirm", false, "confirm immediately")

	return cmd
}

func newSetupIntentsGetCommand() *cobra.Command {
	var clientSecret string

	cmd := &cobra.Command{
		Use:   "get SETUP_INTENT_ID",
		Short: "Get setup intent details",
		Long:  "Display detailed information about a setup intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			retrieve := endpoints.NewRetrieveSetupIntent(resources.SetupIntentID(args[0]))
			if clientSecret != "" {
				retrieve.ClientSecret(clientSecret)
			}

			intent, err := retrieve.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to get setup intent: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intent, setupIntentDetails(intent))
		},
	}

	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "client secret, required with publishable keys")

	return cmd
}

func newSetupIntentsListCommand() *cobra.Command {
	var (
		customer      string
		paymentMethod string
		limit         int64
		all           bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List setup intents",
		Long:  "List setup intents, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := endpoints.NewListSetupIntent().Limit(limit)

			if customer != "" {
				list.Customer(resources.CustomerID(customer))
			}

			if paymentMethod != "" {
				list.PaymentMethod(resources.PaymentMethodID(paymentMethod))
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			intents, err := collect(cmd, client, list.Paginate(), all)
			if err != nil {
				return fmt.Errorf("failed to list setup intents: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intents, setupIntentRows(intents))
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "only intents for this customer")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "only intents for this payment method")
	addListFlags(cmd, &limit, &all)

	return cmd
}

func newSetupIntentsConfirmCommand() *cobra.Command {
	var (
		paymentMethod string
		returnURL     string
	)

	cmd := &cobra.Command{
		Use:   "confirm SETUP_INTENT_ID",
		Short: "Confirm a setup intent",
		Long:  "Confirm that the customer intends to save the payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmIntent := endpoints.NewConfirmSetupIntent(resources.SetupIntentID(args[0]))

			if paymentMethod != "" {
				confirmIntent.PaymentMethod(resources.PaymentMethodID(paymentMethod))
			}

			if returnURL != "" {
				confirmIntent.ReturnURL(returnURL)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			intent, err := confirmIntent.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to confirm setup intent: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intent, setupIntentDetails(intent))
		},
	}

	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method to set up")
	cmd.Flags().StringVar(&returnURL, "return-url", "", "where to send the customer after authentication")

	return cmd
}

func newSetupIntentsCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel SETUP_INTENT_ID",
		Short: "Cancel a setup intent",
		Long:  "Cancel a setup intent that has not succeeded yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cancel := endpoints.NewCancelSetupIntent(resources.SetupIntentID(args[0]))

			if reason != "" {
				value, err := parseEnum[resources.SetupIntentCancellationReason]("reason", reason)
				if err != nil {
					return err
				}

				cancel.CancellationReason(value)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			intent, err := cancel.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to cancel setup intent: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intent, setupIntentDetails(intent))
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "abandoned, duplicate or requested_by_customer")

	return cmd
}

func newSetupIntentsVerifyCommand() *cobra.Command {
	var (
		amounts        []int64
		descriptorCode string
	)

	cmd := &cobra.Command{
		Use:   "verify-microdeposits SETUP_INTENT_ID",
		Short: "Verify bank account microdeposits",
		Long:  "Verify a bank account with the two microdeposit amounts or the descriptor code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(amounts) == 0) == (descriptorCode == "") {
				return fmt.Errorf("%w: exactly one of --amounts or --descriptor-code", ErrMissingFlag)
			}

			verify := endpoints.NewVerifyMicrodepositsSetupIntent(resources.SetupIntentID(args[0]))
			if len(amounts) > 0 {
				verify.Amounts(amounts)
			} else {
				verify.DescriptorCode(descriptorCode)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			intent, err := verify.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to verify microdeposits: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), intent, setupIntentDetails(intent))
		},
	}

	cmd.Flags().Int64SliceVar(&amounts, "amounts", nil, "the two deposit amounts in cents (comma-separated)")
	cmd.Flags().StringVar(&descriptorCode, "descriptor-code", "", "the six-character statement descriptor code")

	return cmd
}
