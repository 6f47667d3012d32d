package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/internal/tui"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// CLI override takes precedence
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "json"
	}

	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// oneShotQuote builds a single-quote configuration from the -amount, -rate,
// -term and -type flags. It returns false when none of them were given.
func oneShotQuote(amount, rate, term, repaymentType string) (config.Quote, bool) {
	if amount == "" && rate == "" && term == "" && repaymentType == "" {
		return config.Quote{}, false
	}
	return config.Quote{
		Name:   "command line",
		Amount: amount,
		Rate:   rate,
		Term:   term,
		Type:   repaymentType,
	}, true
}

// flagWasSet reports whether the named flag was passed explicitly.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	localeFlag := flag.String("locale", "", "locale used for currency formatting, e.g. en-GB")
	precisionFlag := flag.String("precision", "", "arithmetic mode override: float, decimal")
	interactive := flag.Bool("interactive", false, "run the interactive calculator form")
	amountFlag := flag.String("amount", "", "mortgage amount for a single quote")
	rateFlag := flag.String("rate", "", "annual interest rate in percent for a single quote")
	termFlag := flag.String("term", "", "mortgage term in years for a single quote")
	typeFlag := flag.String("type", "", "mortgage type for a single quote: repayment, interest")
	flag.Parse()

	single, hasSingle := oneShotQuote(*amountFlag, *rateFlag, *termFlag, *typeFlag)

	// The config file is optional for the form and one-shot quotes unless
	// it was named explicitly.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if (*interactive || hasSingle) && !flagWasSet("config") {
			conf = &config.Configuration{}
		} else {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if *precisionFlag != "" {
		conf.Output.Precision = *precisionFlag
	}
	if conf.Output.Precision != "" {
		if err := validation.ValidatePrecision(conf.Output.Precision); err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}
	}

	if *localeFlag != "" {
		conf.Output.Locale = *localeFlag
	}
	formatter := format.NewFormatter(conf.Output.Locale)
	logger.Debug("currency formatting selected",
		zap.String("op", "main"),
		zap.String("locale", formatter.Locale()),
		zap.String("currency", formatter.Currency()),
	)

	if *interactive {
		if err := tui.Run(logger, formatter, conf.Output.Precision); err != nil {
			logger.Fatal("interactive form failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	if hasSingle {
		conf.Quotes = []config.Quote{single}
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := quote.GetQuotes(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute quotes",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results, formatter)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatYAML:
		if err := output.YAMLFormat(results); err != nil {
			logger.Fatal("failed to write output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
