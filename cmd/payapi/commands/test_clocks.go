package commands

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// NewTestClocksCommand creates the test-clocks command group.
func NewTestClocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test-clocks",
		Aliases: []string{"test-clock", "clocks"},
		Short:   "Manage test clocks",
		Long:    "Create, advance and delete test clocks. Requires a test mode key.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireTestKey(cmd.Context())
		},
	}

	cmd.AddCommand(newTestClocksCreateCommand())
	cmd.AddCommand(newTestClocksGetCommand())
	cmd.AddCommand(newTestClocksListCommand())
	cmd.AddCommand(newTestClocksAdvanceCommand())
	cmd.AddCommand(newTestClocksDeleteCommand())

	return cmd
}

func testClockDetails(clock *resources.TestClock) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", string(clock.ID))
		_ = table.Append("Name", formatOptional(clock.Name))
		_ = table.Append("Status", clock.Status.String())
		_ = table.Append("Frozen Time", formatTimestamp(clock.FrozenTime))
		_ = table.Append("Deletes After", formatTimestamp(clock.DeletesAfter))
		_ = table.Append("Created", formatTimestamp(clock.Created))
	}
}

func testClockRows(clocks []resources.TestClock) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Status", "Frozen Time", "Deletes After")

		for _, clock := range clocks {
			_ = table.Append(
				string(clock.ID),
				formatOptional(clock.Name),
				clock.Status.String(),
				formatTimestamp(clock.FrozenTime),
				formatTimestamp(clock.DeletesAfter),
			)
		}
	}
}

func newTestClocksCreateCommand() *cobra.Command {
	var (
		frozenTime string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a test clock",
		Long:  "Create a test clock frozen at the given time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTimestamp(frozenTime, time.Now())
			if err != nil {
				return err
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			create := endpoints.NewCreateTestClock(ts)
			if name != "" {
				create.Name(name)
			}

			clock, err := create.Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to create test clock: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), clock, testClockDetails(clock))
		},
	}

	cmd.Flags().StringVar(&frozenTime, "frozen-time", "now", "start time (unix seconds, RFC 3339, now or +DURATION)")
	cmd.Flags().StringVar(&name, "name", "", "clock name")

	return cmd
}

func newTestClocksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLOCK_ID",
		Short: "Get test clock details",
		Long:  "Display detailed information about a test clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			clock, err := endpoints.NewRetrieveTestClock(resources.TestClockID(args[0])).Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to get test clock: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), clock, testClockDetails(clock))
		},
	}
}

func newTestClocksListCommand() *cobra.Command {
	var (
		limit int64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List test clocks",
		Long:  "List test clocks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			list := endpoints.NewListTestClock().Limit(limit)

			clocks, err := collect(cmd, client, list.Paginate(), all)
			if err != nil {
				return fmt.Errorf("failed to list test clocks: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), clocks, testClockRows(clocks))
		},
	}

	addListFlags(cmd, &limit, &all)

	return cmd
}

func newTestClocksAdvanceCommand() *cobra.Command {
	var (
		to string
		by time.Duration
	)

	cmd := &cobra.Command{
		Use:   "advance CLOCK_ID",
		Short: "Advance a test clock",
		Long:  "Move a test clock forward, either to --to or by --by from its current frozen time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (to == "") == (by == 0) {
				return fmt.Errorf("%w: exactly one of --to or --by", ErrMissingFlag)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			id := resources.TestClockID(args[0])

			var target resources.Timestamp

			if by != 0 {
				clock, err := endpoints.NewRetrieveTestClock(id).Send(cmd.Context(), client)
				if err != nil {
					return fmt.Errorf("failed to get test clock: %w", err)
				}

				target = resources.TimestampFrom(clock.FrozenTime.Time().Add(by))
			} else {
				target, err = parseTimestamp(to, time.Now())
				if err != nil {
					return err
				}
			}

			clock, err := endpoints.NewAdvanceTestClock(id, target).Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to advance test clock: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), clock, testClockDetails(clock))
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target time (unix seconds, RFC 3339 or +DURATION from now)")
	cmd.Flags().DurationVar(&by, "by", 0, "advance by this duration from the current frozen time")

	return cmd
}

func newTestClocksDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CLOCK_ID",
		Short: "Delete a test clock",
		Long:  "Delete a test clock and every object attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd, fmt.Sprintf("Really delete test clock '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := endpoints.NewDeleteTestClock(resources.TestClockID(args[0])).Send(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to delete test clock: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted test clock '%s'\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
