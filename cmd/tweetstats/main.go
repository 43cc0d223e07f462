// Package main provides the tweetstats command: it loads a tweet export, sorts
// it, saves it as XML and prints word frequency and IDF rankings.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"tweetstats/internal/config"
	"tweetstats/internal/formatter"
	"tweetstats/internal/loader"
	"tweetstats/internal/logger"
	"tweetstats/internal/normalizer"
	"tweetstats/internal/sorter"
	"tweetstats/internal/stats"
	"tweetstats/internal/writer"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML or TOML configuration file (default: ./"+config.DefaultPath+" if present)")
	flag.Parse()

	cfg, resolved, err := config.Resolve(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level).With("run_id", uuid.NewString())
	if resolved != "" {
		log.Info("configuration loaded", "path", resolved)
	}

	log.Debug("effective configuration", "config", cfg.String())

	run(cfg, log, os.Stdout)
}

// summary describes what a run produced.
type summary struct {
	Loaded       int
	Rejected     int
	Dated        int
	DateFailures int
	Saved        bool
	TopWords     []stats.TermCount
	TopIDF       []stats.TermScore
	TopUsers     []stats.UserCount
}

// run executes the pipeline. Load, date and write failures are logged and the
// run carries on with whatever data it has.
func run(cfg *config.Config, log *logger.Logger, out io.Writer) summary {
	var sum summary

	report := formatter.NewReporter(out, cfg.Report.TextWidth)

	// 1. Load
	data, err := loader.Load(cfg.Input.Path)
	if err != nil {
		log.Error("failed to load tweets, continuing with an empty collection", "path", cfg.Input.Path, "error", err)
	}

	sum.Loaded = data.Len()
	report.Loaded(data.Len(), cfg.Input.Path)

	// 2. Ingestion checks
	processor := normalizer.NewProcessor(cfg.Normalize.Strict)

	accepted, issues, err := processor.Validate(data)
	if err != nil {
		log.Error("validation failed, keeping the loaded collection", "error", err)
	} else {
		data = accepted
	}

	for _, issue := range issues {
		log.Warn("tweet without text", "index", issue.Index, "dropped", cfg.Normalize.Strict)
	}

	if cfg.Normalize.Strict {
		sum.Rejected = len(issues)
	}

	// 3. Sort
	data = sorter.ByUserName(data)
	report.SortedByUserName()

	policy, err := sorter.ParsePolicy(cfg.Dates.OnError)
	if err != nil {
		log.Warn("unknown date policy, using quarantine", "error", err)

		policy = sorter.Quarantine
	}

	res, err := sorter.ByCreatedAt(data, sorter.NewDateParser(cfg.Dates.Layouts), policy)
	if err != nil {
		log.Error("date sort aborted, keeping user name order", "error", err)
	} else {
		data = res.Data
		sum.Dated = res.Parsed()
		report.SortedByDate(res, policy)
	}

	if res != nil {
		sum.DateFailures = len(res.Failures)

		for _, f := range res.Failures {
			log.Debug("unparseable timestamp", "index", f.Index, "user", f.UserName, "value", f.Value, "error", f.Err)
		}
	}

	// 4. Save
	if err := writer.NewWriter(cfg.Output.PrettyPrint).Save(data, cfg.Output.Path); err != nil {
		log.Error("failed to save tweets", "path", cfg.Output.Path, "error", err)
	} else {
		sum.Saved = true
		report.Saved(cfg.Output.Path)
	}

	// 5. Statistics over the collection that was saved
	tokens := processor.Tokenize(data)

	sum.TopWords = stats.TopCounts(stats.WordFrequency(tokens), cfg.Stats.TopN, cfg.Stats.MinWordLength)
	report.TopWords(sum.TopWords, cfg.Stats.TopN, cfg.Stats.MinWordLength)

	sum.TopIDF = stats.TopScores(stats.IDF(tokens, cfg.Stats.MinWordLength), cfg.Stats.TopN)
	report.TopIDF(sum.TopIDF, cfg.Stats.TopN)

	sum.TopUsers = stats.TweetsPerUser(data.ByUser(), cfg.Stats.TopN)
	report.TopUsers(sum.TopUsers, cfg.Stats.TopN)

	log.Info("run complete",
		"tweets", sum.Loaded,
		"rejected", sum.Rejected,
		"dated", sum.Dated,
		"date_failures", sum.DateFailures,
		"saved", sum.Saved,
	)

	return sum
}
