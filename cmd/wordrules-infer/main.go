package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fulmenhq/wordrules/cluster"
	"github.com/fulmenhq/wordrules/config"
	"github.com/fulmenhq/wordrules/corpus"
	"github.com/fulmenhq/wordrules/logging"
	"github.com/fulmenhq/wordrules/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wordrules-infer", flag.ContinueOnError)
	corpusRoot := fs.String("corpus", "", "directory to discover corpus files under")
	configPath := fs.String("config", "", "path to a YAML config file (defaults to the XDG config location)")
	manifestPath := fs.String("manifest", "", "optional corpus manifest file to validate before loading")
	outputPath := fs.String("out", "", "where to write the run report (defaults to stdout)")
	outputFormat := fs.String("format", "", "report format: text, yaml, or json")
	logLevel := fs.String("log-level", "", "debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.XDGConfigPath()
	}
	cfg, err := config.Load(cfgPath, config.Config{
		CorpusRoot:   *corpusRoot,
		ManifestPath: *manifestPath,
		OutputPath:   *outputPath,
		OutputFormat: *outputFormat,
		LogLevel:     *logLevel,
	})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.CorpusRoot == "" {
		return errors.New("a corpus root is required (--corpus or corpusRoot in config)")
	}

	logger, err := logging.New(&logging.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	if cfg.ManifestPath != "" {
		manifest, err := corpus.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return fmt.Errorf("loading manifest: %w", err)
		}
		logger.Info("loaded corpus manifest", zap.String("name", manifest.Name), zap.Int("declaredFiles", len(manifest.Files)))
	}

	paths, err := corpus.Discover(cfg.CorpusRoot, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("discovering corpus files: %w", err)
	}
	logger.Info("discovered corpus files", zap.Int("count", len(paths)))

	proc := corpus.NewCombinedProcessor(corpus.StripProcessor{}, corpus.HangeulComposer{})
	pairs, loadErr := corpus.LoadAll(paths, proc)
	if loadErr != nil {
		logger.Warn("some corpus lines were rejected", zap.Error(loadErr))
	}
	logger.Info("loaded training word pairs", zap.Int("count", len(pairs)))

	set := cluster.NewSet()
	for _, pair := range pairs {
		set.Add(cluster.New(pair.WordA, pair.WordB))
	}
	snapshots := set.Snapshot()
	logger.Info("clustered training word pairs", zap.Int("clusters", len(snapshots)))

	r := report.Build(snapshots)
	return writeReport(r, cfg.OutputPath, cfg.OutputFormat)
}

func writeReport(r report.Report, outputPath, format string) error {
	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = report.RenderYAML(r)
	case "json":
		data, err = report.RenderJSON(r)
	default:
		data = []byte(report.RenderText(r))
	}
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
