package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alertiq/sales-atlas/pkg/adapters"
	"github.com/alertiq/sales-atlas/pkg/models/store"
)

type FetchCmd struct {
	cfgPath *string
	limit   int
}

// NewFetchCmd pulls recent order lines from the marketplace into the local
// cache.
func NewFetchCmd(cfgPath *string) *cobra.Command {
	fc := &FetchCmd{cfgPath: cfgPath}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch recent order lines into the local cache",
		RunE:  fc.run,
	}
	cmd.Flags().IntVar(&fc.limit, "limit", 0, "Maximum order events to fetch (defaults to the configured fetch_limit)")
	return cmd
}

func (fc *FetchCmd) run(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(*fc.cfgPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	limit := fc.limit
	if limit <= 0 {
		limit = d.cfg.Allegro.FetchLimit
	}

	fetched, err := d.marketClient().FetchOrderLines(ctx, limit)
	if err != nil {
		return fmt.Errorf("fetch order lines: %w", err)
	}

	records := make([]store.OrderLine, 0, len(fetched))
	for _, f := range fetched {
		records = append(records, adapters.MapDomainOrderLineToStore(f.ID, f.Line))
	}

	orderStore, err := d.orderStore()
	if err != nil {
		return err
	}
	if err := orderStore.Add(ctx, records); err != nil {
		return fmt.Errorf("cache order lines: %w", err)
	}

	cmd.Printf("Cached %d order lines\n", len(records))
	return nil
}
