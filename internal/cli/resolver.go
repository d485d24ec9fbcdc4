package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/gametext/internal/assets"
	"github.com/rshade/gametext/internal/config"
)

// newResolver builds the asset resolver for a command invocation: the
// standard four-tier chain with directories from flags (falling back to
// config), wrapped in the TTL text cache.
func newResolver(cmd *cobra.Command, cfg *config.Config) assets.TextResolver {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = cfg.Assets.DataDir
	}

	bundleDir, _ := cmd.Flags().GetString("bundle-dir")
	if bundleDir == "" {
		bundleDir = cfg.Assets.BundleDir
	}

	resolver := assets.NewDefaultResolver(dataDir, bundleDir, nil, assets.WithLogger(logger))

	ttl := time.Duration(cfg.Assets.CacheTTLSeconds) * time.Second
	return assets.NewCachedResolver(resolver, ttl)
}
