package orchestration

import (
	"github.com/AniDashyan/parallel-summation/internal/summing"
)

// StrategyAll selects every registered strategy.
const StrategyAll = "all"

// GetSummersToRun resolves the configured strategy selection against the
// factory, always in canonical run order.
//
// Selecting a single parallel strategy still includes the single-threaded
// baseline ahead of it, so the driver's cross-check against the baseline
// remains possible; selecting the baseline itself runs it alone.
//
// Parameters:
//   - strategy: The configured selection ("all" or a factory key).
//   - factory: The strategy factory to resolve implementations from.
//
// Returns:
//   - []summing.Summer: The strategies to execute, in run order.
//   - error: A ConfigError for an unknown strategy key.
func GetSummersToRun(strategy string, factory summing.SummerFactory) ([]summing.Summer, error) {
	if strategy == StrategyAll {
		return factory.GetAll(), nil
	}

	selected, err := factory.Get(strategy)
	if err != nil {
		return nil, err
	}
	if selected.Name() == summing.NameSingle {
		return []summing.Summer{selected}, nil
	}

	baseline, err := factory.Get(summing.KeySingle)
	if err != nil {
		return nil, err
	}
	return []summing.Summer{baseline, selected}, nil
}
