package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/wire"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog",
	}

	cmd.AddCommand(catalogProductsCmd())
	cmd.AddCommand(catalogCollectionsCmd())
	cmd.AddCommand(catalogShowCmd())

	return cmd
}

func catalogProductsCmd() *cobra.Command {
	var category string
	var featured bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long: `List catalog products with their variants.

Examples:
  anvad catalog products
  anvad catalog products --category a2-ghee
  anvad catalog products --featured`,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := wire.CatalogService().ListProducts(context.Background(), primary.ListProductsRequest{
				Category: category,
				Featured: featured,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tRATING\tVARIANTS")
			for _, p := range products {
				skus := ""
				for i, v := range p.Variants {
					if i > 0 {
						skus += ", "
					}
					skus += fmt.Sprintf("%s ₹%s", v.SKU, formatRupees(v.Price))
				}
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\n", p.ID, p.Name, p.Rating, skus)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by collection slug")
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured products")
	return cmd
}

func catalogCollectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			collections, err := wire.CatalogService().ListCollections(context.Background())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSLUG")
			for _, c := range collections {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Title, c.Slug)
			}
			return w.Flush()
		},
	}
}

func catalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [product-id]",
		Short: "Show one product in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			p, err := wire.CatalogService().GetProduct(context.Background(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (#%d)\n", p.Name, p.ID)
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			fmt.Printf("Rating %.1f (%d reviews)\n\n", p.Rating, p.ReviewCount)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SKU\tLABEL\tPRICE\tMRP\tSTOCK")
			for _, v := range p.Variants {
				stock := "—"
				if !v.InStock {
					stock = "out"
				} else if v.StockQuantity != nil {
					stock = strconv.Itoa(*v.StockQuantity)
				}
				fmt.Fprintf(w, "%s\t%s\t₹%s\t₹%s\t%s\n",
					v.SKU, v.Label, formatRupees(v.Price), formatRupees(v.OriginalPrice), stock)
			}
			return w.Flush()
		},
	}
}
