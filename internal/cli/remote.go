package cli

import (
	"errors"

	"hotelbooking/pkg/client"
	"hotelbooking/pkg/model"

	"github.com/spf13/cobra"
)

func addServerFlag(c *cobra.Command, serverURL *string) {
	c.Flags().StringVar(serverURL, "url", serverURLFromEnv(), "booking service base URL (env "+EnvServerURL+")")
}

func newBookCmd() *cobra.Command {
	var (
		serverURL string
		form      model.BookingForm
	)

	c := &cobra.Command{
		Use:   "book",
		Short: "Book the first suitable room of a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := client.NewBookingClient(serverURL).Book(cmd.Context(), form)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), model.BookingReference{Reference: ref})
		},
	}

	addServerFlag(c, &serverURL)
	c.Flags().Int64Var(&form.HotelID, "hotel-id", 0, "hotel id")
	c.Flags().StringVar(&form.From, "from", "", "check-in, RFC3339 or YYYY-MM-DD")
	c.Flags().StringVar(&form.To, "to", "", "check-out, RFC3339 or YYYY-MM-DD")
	c.Flags().IntVar(&form.People, "people", 1, "number of guests")
	_ = c.MarkFlagRequired("hotel-id")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func newAvailabilityCmd() *cobra.Command {
	var (
		serverURL string
		form      model.AvailabilityForm
	)

	c := &cobra.Command{
		Use:   "availability",
		Short: "List free rooms of a hotel for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.HotelID == 0 && form.HotelName == "" {
				return errors.New("one of --hotel-id or --hotel-name is required")
			}
			rooms, err := client.NewBookingClient(serverURL).Availability(cmd.Context(), form)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rooms)
		},
	}

	addServerFlag(c, &serverURL)
	c.Flags().Int64Var(&form.HotelID, "hotel-id", 0, "hotel id")
	c.Flags().StringVar(&form.HotelName, "hotel-name", "", "exact hotel name")
	c.Flags().StringVar(&form.From, "from", "", "check-in, RFC3339 or YYYY-MM-DD")
	c.Flags().StringVar(&form.To, "to", "", "check-out, RFC3339 or YYYY-MM-DD")
	c.Flags().IntVar(&form.People, "people", 1, "number of guests")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func newLookupCmd() *cobra.Command {
	var serverURL string

	c := &cobra.Command{
		Use:   "lookup <reference>",
		Short: "Show a booking by its reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := client.NewBookingClient(serverURL).GetByReference(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), detail)
		},
	}

	addServerFlag(c, &serverURL)
	return c
}

func newSearchCmd() *cobra.Command {
	var serverURL string

	c := &cobra.Command{
		Use:   "search <name>",
		Short: "Find hotels whose name contains the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hotels, err := client.NewBookingClient(serverURL).SearchHotels(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), hotels)
		},
	}

	addServerFlag(c, &serverURL)
	return c
}
