// Package cli provides the Cobra-based operator CLI for velactl.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vela-commerce/vela-commerce/internal/app"
	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/stock"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// Backend abstracts the upstream calls the CLI needs, so tests can
// substitute a fake.
type Backend interface {
	FetchProducts(ctx context.Context) ([]upstream.Product, error)
	UpdateProduct(ctx context.Context, id string, patch upstream.ProductPatch) (upstream.Product, error)
	FetchSuppliers(ctx context.Context) ([]upstream.Supplier, error)
}

// NewRootCommand builds the velactl command tree. out receives all
// command output; backend may be nil, in which case it is built from
// configuration on first use.
func NewRootCommand(out io.Writer, backend Backend) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "velactl",
		Short:         "Operator CLI for the Vela commerce backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if backend != nil {
				return nil
			}
			_ = godotenv.Load()
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			backend = upstream.NewClient(cfg.BackendURL, cfg.BackendTimeout)
			return nil
		},
	}
	rootCmd.SetOut(out)

	var query string
	var lowOnly bool
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := backend.FetchProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}
			index := catalog.NewIndex()
			index.Load(mapProducts(products))

			var result []catalog.Product
			if lowOnly {
				result = index.LowStock()
			} else {
				result = index.FilterByText(query)
			}
			for _, p := range result {
				fmt.Fprintf(out, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
					p.ID, p.SKU, p.Name, p.Price, p.Stock, stock.Classify(p.Stock))
			}
			return nil
		},
	}
	productsCmd.Flags().StringVar(&query, "q", "", "filter by name or SKU")
	productsCmd.Flags().BoolVar(&lowOnly, "low-stock", false, "only products below the low-stock threshold")

	adjustCmd := &cobra.Command{
		Use:   "adjust <product-id> <delta>",
		Short: "Apply a signed stock delta to a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %w", err)
			}

			products, err := backend.FetchProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}
			index := catalog.NewIndex()
			index.Load(mapProducts(products))

			product, ok := index.Get(args[0])
			if !ok {
				return fmt.Errorf("product %s not found", args[0])
			}

			adj, err := stock.Adjust(product.ID, product.Stock, delta)
			if err != nil {
				return err
			}
			newStock := adj.ResultingStock
			updated, err := backend.UpdateProduct(cmd.Context(), product.ID, upstream.ProductPatch{Stock: &newStock})
			if err != nil {
				return fmt.Errorf("update stock: %w", err)
			}
			fmt.Fprintf(out, "%s: %d -> %d (%s)\n", updated.Name, adj.PreviousStock, updated.Stock, stock.Classify(updated.Stock))
			return nil
		},
	}

	suppliersCmd := &cobra.Command{
		Use:   "suppliers",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := backend.FetchSuppliers(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch suppliers: %w", err)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}

	rootCmd.AddCommand(productsCmd, adjustCmd, suppliersCmd)
	return rootCmd
}

func mapProducts(products []upstream.Product) []catalog.Product {
	mapped := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		mapped = append(mapped, catalog.Product{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: p.Category,
		})
	}
	return mapped
}
