// Package engine assembles the full risk assessment for one mint: it
// fans out the external reads, runs the analysis stages over whatever
// came back, and folds the results into a composite verdict.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/holders"
	"solana-token-guard/internal/market"
	"solana-token-guard/internal/observability"
	"solana-token-guard/internal/provenance"
	"solana-token-guard/internal/scoring"
	"solana-token-guard/internal/solana"
	"solana-token-guard/internal/spl"
)

// Config carries the tunables of every analysis stage. Zero values are
// replaced by the stage defaults in New.
type Config struct {
	Identifier holders.IdentifierConfig
	Cluster    provenance.ClusterConfig
	Classifier market.ClassifierConfig
	Scoring    scoring.Config

	// FunderSampleSize bounds how many top holders get a funding lookup.
	FunderSampleSize int
	// SignatureLimit bounds the per-holder signature fetch.
	SignatureLimit int
}

// DefaultConfig returns the stock heuristic thresholds.
func DefaultConfig() Config {
	return Config{
		Identifier:       holders.DefaultIdentifierConfig(),
		Cluster:          provenance.DefaultClusterConfig(),
		Classifier:       market.DefaultClassifierConfig(),
		Scoring:          scoring.DefaultConfig(),
		FunderSampleSize: provenance.DefaultSampleSize,
		SignatureLimit:   10,
	}
}

// Engine produces assessments. Safe for concurrent use.
type Engine struct {
	collector *Collector
	funding   provenance.FundingSource
	cfg       Config
	log       *zap.Logger
}

// Options for creating an Engine.
type Options struct {
	RPC    solana.RPCClient
	Market MarketSource
	Config Config
	Logger *zap.Logger
}

// New creates an Engine. RPC is required; Market and Logger are optional.
func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg.FunderSampleSize <= 0 {
		cfg.FunderSampleSize = provenance.DefaultSampleSize
	}
	if cfg.SignatureLimit <= 0 {
		cfg.SignatureLimit = 10
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		collector: NewCollector(opts.RPC, opts.Market),
		funding:   &rpcFundingSource{rpc: opts.RPC, sigLimit: cfg.SignatureLimit},
		cfg:       cfg,
		log:       log,
	}
}

// Assess runs the full pipeline for one mint.
//
// The mint account read and decode are the only fatal steps: without a
// valid supply nothing downstream is computable. Every other input is
// optional and its absence degrades the matching axis to "unknown"
// instead of aborting the assessment.
func (e *Engine) Assess(ctx context.Context, mint string) (*domain.Assessment, error) {
	bundle := e.collector.Collect(ctx, mint)

	if bundle.AccountErr != nil {
		observability.RecordExternalReadError("mint_account")
		return nil, bundle.AccountErr
	}
	if bundle.Account == nil {
		return nil, fmt.Errorf("mint account %s not found", mint)
	}
	mintRecord, err := spl.DecodeMint(bundle.Account.Data)
	if err != nil {
		return nil, fmt.Errorf("decode mint %s: %w", mint, err)
	}

	if bundle.LargestErr != nil {
		observability.RecordExternalReadError("largest_accounts")
		e.log.Warn("holder list unavailable", zap.String("mint", mint), zap.Error(bundle.LargestErr))
	}
	if bundle.MarketErr != nil {
		observability.RecordExternalReadError("market")
		e.log.Warn("market snapshot unavailable", zap.String("mint", mint), zap.Error(bundle.MarketErr))
	}

	holderSummary := e.analyzeHolders(bundle, mintRecord)
	insider := e.analyzeProvenance(ctx, holderSummary)

	var metrics domain.LiquidityMetrics
	var ageDays *float64
	if bundle.Market != nil {
		metrics = bundle.Market.Metrics
		ageDays = tokenAgeDays(bundle.Market.PairCreatedAt, time.Now())
	}
	authenticity := market.Classify(metrics, e.cfg.Classifier)

	score := scoring.Score(scoring.Input{
		Mint:                mint,
		HasMintAuthority:    mintRecord.HasMintAuthority,
		HasFreezeAuthority:  mintRecord.HasFreezeAuthority,
		Top10PercentExclLP:  holderSummary.Top10PercentExcludingLP,
		TotalInsiderPercent: insider.TotalInsiderPercent,
		AuthenticityTier:    authenticity.Tier,
		TokenAgeDays:        ageDays,
	}, e.cfg.Scoring)

	return &domain.Assessment{
		Mint:                  mint,
		MintRecord:            mintRecord,
		HolderSummary:         holderSummary,
		InsiderSummary:        insider,
		LiquidityAuthenticity: authenticity,
		RiskScore:             score,
		TokenAgeDays:          ageDays,
		AssessedAt:            time.Now().UnixMilli(),
	}, nil
}

// analyzeHolders builds the concentration rollup from the largest-accounts
// read. A failed or empty read yields a summary with no holders, which
// Summarize reports as unknown rather than zero concentration.
func (e *Engine) analyzeHolders(bundle *Bundle, rec *domain.MintRecord) *domain.HolderSummary {
	entries := make([]holders.BalanceEntry, 0, len(bundle.Largest))
	for _, bal := range bundle.Largest {
		raw, err := domain.ParseAmount(bal.Amount)
		if err != nil {
			e.log.Warn("skipping unparseable balance",
				zap.String("account", bal.Address), zap.String("amount", bal.Amount))
			continue
		}
		entries = append(entries, holders.BalanceEntry{Address: bal.Address, RawAmount: raw})
	}

	dist := holders.BuildDistribution(entries, rec.Supply, rec.Decimals)

	var reserve *float64
	if bundle.Market != nil {
		reserve = bundle.Market.PoolMintReserve
	}
	part := holders.IdentifyPool(dist, reserve, e.cfg.Identifier)

	return holders.Summarize(dist, part)
}

// analyzeProvenance runs the funding lookups for the top non-LP holders
// and clusters holders that share a funder.
func (e *Engine) analyzeProvenance(ctx context.Context, summary *domain.HolderSummary) *domain.InsiderSummary {
	nonLP := nonLPHolders(summary)
	funders := provenance.CollectFunders(ctx, e.funding, nonLP, e.cfg.FunderSampleSize)
	clusters := provenance.BuildClusters(funders, nonLP)
	return provenance.Summarize(clusters, nonLP, e.cfg.Cluster)
}

// nonLPHolders rebuilds the holder list minus the identified pool vault.
func nonLPHolders(summary *domain.HolderSummary) []*domain.HolderRecord {
	if summary.LPHolder == nil {
		return summary.Holders
	}
	out := make([]*domain.HolderRecord, 0, len(summary.Holders))
	for _, h := range summary.Holders {
		if h.Address == summary.LPHolder.Address {
			continue
		}
		out = append(out, h)
	}
	return out
}

// tokenAgeDays converts a pool creation time into fractional days of age.
// A nil or future creation time means the age is unknown.
func tokenAgeDays(created *time.Time, now time.Time) *float64 {
	if created == nil || created.After(now) {
		return nil
	}
	days := now.Sub(*created).Hours() / 24
	return &days
}
