package module

import (
	"context"
	"fmt"

	"scrollpress/internal/core/quality"
	"scrollpress/internal/modkit/repokit"
	"scrollpress/internal/platform/config"
)

// QualityFromConfig reads the quality gate thresholds from env scoped config.
// Unset keys fall back to the gate defaults
func QualityFromConfig(cfg config.Conf) quality.Config {
	return quality.Config{
		MaxExternalLinks: cfg.MayInt("SCROLLS_MAX_EXTERNAL_LINKS", 0),
		MinWordCount:     cfg.MayInt("SCROLLS_MIN_WORD_COUNT", 0),
	}
}

// TxTimeoutHook bounds every scrolls transaction with a statement timeout
// so a pathological document cannot pin a connection. Tunable via
// SCROLLS_TX_TIMEOUT_MS; zero and below disables the bound
func TxTimeoutHook(cfg config.Conf) repokit.BeginHook {
	ms := cfg.MayInt("SCROLLS_TX_TIMEOUT_MS", 5000)
	return func(ctx context.Context, q repokit.Queryer) error {
		if ms <= 0 {
			return nil
		}
		_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", ms))
		return err
	}
}
