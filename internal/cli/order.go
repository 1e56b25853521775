package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/wire"
)

func customerFromFlags(name, email, phone, address string) models.Customer {
	return models.Customer{Name: name, Email: email, Phone: phone, Address: address}
}

// OrderCmd returns the order command
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and inspect orders",
	}

	cmd.AddCommand(orderPlaceCmd())
	cmd.AddCommand(orderListCmd())
	cmd.AddCommand(orderShowCmd())

	return cmd
}

func orderPlaceCmd() *cobra.Command {
	var name, email, phone, address string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order from the current cart",
		Long: `Validate the current cart and, if it passes, create an order.

Examples:
  anvad order place --name "Asha" --email asha@example.com --address "12 MG Road, Pune"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || address == "" {
				return fmt.Errorf("--name, --email and --address are required")
			}

			ctx := context.Background()
			state, err := wire.CartService().Current(ctx)
			if err != nil {
				return err
			}

			resp, err := wire.OrderService().PlaceOrder(ctx, primary.PlaceOrderRequest{
				Customer: customerFromFlags(name, email, phone, address),
				Lines:    state.Lines,
			})
			if err != nil {
				return err
			}

			// The order owns these lines now.
			if _, err := wire.CartService().Clear(ctx); err != nil {
				return err
			}

			fmt.Printf("✅ Order %s placed, total ₹%s\n", resp.Reference, formatRupees(resp.TotalPrice))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&email, "email", "", "Customer email")
	cmd.Flags().StringVar(&phone, "phone", "", "Customer phone")
	cmd.Flags().StringVar(&address, "address", "", "Delivery address")
	return cmd
}

func orderListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := wire.OrderService().ListOrders(context.Background(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REFERENCE\tCUSTOMER\tTOTAL\tPAYMENT\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t₹%s\t%s\t%s\n",
					o.Reference, o.Customer.Name, formatRupees(o.TotalPrice),
					o.PaymentStatus, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum orders to show")
	return cmd
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [reference]",
		Short: "Show one order in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := wire.OrderService().GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Order %s — %s\n", o.Reference, o.PaymentStatus)
			fmt.Printf("%s <%s> %s\n%s\n\n", o.Customer.Name, o.Customer.Email, o.Customer.Phone, o.Customer.Address)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tVARIANT\tPRICE\tQTY\tTOTAL")
			for _, l := range o.Lines {
				fmt.Fprintf(w, "%s\t%s\t₹%s\t%d\t₹%s\n",
					l.ProductName, l.VariantLabel, formatRupees(l.UnitPrice), l.Quantity, formatRupees(l.LineTotal))
			}
			w.Flush()
			fmt.Printf("\nTotal ₹%s (%d paisa)\n", formatRupees(o.TotalPrice), o.AmountPaisa)
			if o.PaidAt != nil {
				fmt.Printf("Paid %s via %s\n", o.PaidAt.Format("2006-01-02 15:04"), o.PaymentID)
			}
			return nil
		},
	}
}
