package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
	"github.com/dhruvgupta3389/anvad/internal/wire"
)

// CartCmd returns the cart command
func CartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local shopping cart",
		Long:  `Add, inspect and validate the locally persisted shopping cart.`,
	}

	cmd.AddCommand(cartAddCmd())
	cmd.AddCommand(cartListCmd())
	cmd.AddCommand(cartUpdateCmd())
	cmd.AddCommand(cartRemoveCmd())
	cmd.AddCommand(cartClearCmd())
	cmd.AddCommand(cartCheckoutCmd())

	return cmd
}

func cartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add [product-id] [variant-sku]",
		Short: "Add a product variant to the cart",
		Long: `Add a catalog selection to the cart. Adding the same variant again
merges into the existing line.

Examples:
  anvad cart add 1 GIR-500ML
  anvad cart add 1 GIR-1000ML --quantity 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			state, err := wire.CartService().Add(context.Background(), productID, args[1], quantity)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Added %s ×%d\n", args[1], quantity)
			printCart(state)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity to add")
	return cmd
}

func cartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.CartService().Current(context.Background())
			if err != nil {
				return err
			}
			printCart(state)
			return nil
		},
	}
}

func cartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [product-id] [variant-sku] [quantity]",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[2])
			}

			state, err := wire.CartService().UpdateQuantity(context.Background(), productID, args[1], quantity)
			if err != nil {
				return err
			}
			printCart(state)
			return nil
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [product-id] [variant-sku]",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			state, err := wire.CartService().Remove(context.Background(), productID, args[1])
			if err != nil {
				return err
			}
			printCart(state)
			return nil
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := wire.CartService().Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("🧹 Cart cleared")
			return nil
		},
	}
}

func cartCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Validate the cart against the live catalog",
		Long: `Run the checkout validation pass. Each line is checked against the
current catalog; the verdict table shows what changed since the item
was added.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.CartService().Checkout(context.Background())
			if err != nil {
				return err
			}
			printReport(report)
			if !report.Summary.CanProceed {
				os.Exit(1)
			}
			return nil
		},
	}
}

func printCart(state cart.State) {
	if state.IsEmpty() {
		fmt.Println("Cart is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tVARIANT\tPRICE\tQTY\tLINE TOTAL")
	for _, l := range state.Lines {
		fmt.Fprintf(w, "%s\t%s (%s)\t₹%s\t%d\t₹%s\n",
			l.ProductName, l.VariantLabel, l.VariantSKU,
			formatRupees(l.UnitPrice), l.Quantity,
			formatRupees(l.UnitPrice*float64(l.Quantity)))
	}
	w.Flush()
	fmt.Printf("\n%d item(s), total ₹%s\n", state.TotalItemCount, formatRupees(state.TotalPrice))
}

func printReport(report *checkout.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tQTY\tSTATUS\tPROBLEMS")
	for _, v := range report.Verdicts {
		problems := ""
		for i, p := range v.Problems {
			if i > 0 {
				problems += "; "
			}
			problems += p
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", v.VariantSKU, v.RequestedQuantity, colorStatus(v.Status), problems)
	}
	w.Flush()

	s := report.Summary
	fmt.Printf("\n%d valid, %d warnings, %d errors — total ₹%s\n",
		s.ValidItems, s.WarningItems, s.ErrorItems, formatRupees(s.TotalPrice))
	if s.CanProceed {
		color.Green("✅ Cart can proceed to checkout")
	} else {
		color.Red("❌ Cart is blocked, fix the errors above")
	}
}

func colorStatus(s checkout.Status) string {
	switch s {
	case checkout.StatusError:
		return color.RedString(string(s))
	case checkout.StatusWarning:
		return color.YellowString(string(s))
	default:
		return color.GreenString(string(s))
	}
}

func formatRupees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
