package main

import (
	"io"
	"os"

	"github.com/kezabelle/oneaway"
	"github.com/kezabelle/oneaway/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	genOpts := oneaway.Options{
		Words:     cliOpts.Words,
		Preset:    cliOpts.Preset,
		Operators: cliOpts.Operators,
		Limit:     cliOpts.Limit,
		Domains:   cliOpts.Domains,
	}
	dictionaryPath := cliOpts.Dictionary
	lineFormat := cliOpts.Format

	if cliOpts.PermutationConfig != "" {
		config, err := oneaway.NewConfig(cliOpts.PermutationConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.PermutationConfig, err)
		}
		if genOpts.Preset == "" {
			genOpts.Preset = config.Preset
		}
		if len(genOpts.Operators) == 0 {
			genOpts.Operators = config.Operators
		}
		if dictionaryPath == "" {
			dictionaryPath = config.Dictionary
		}
		if lineFormat == "" {
			lineFormat = config.Format
		}
	}
	if dictionaryPath == "" {
		dictionaryPath = oneaway.DefaultDictionaryPath
	}

	gen, err := oneaway.New(&genOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to parse oneaway options got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated variants (including duplicates): %v", gen.EstimateCount())
		return
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if cliOpts.Report {
		dictionary, err := oneaway.LoadDictionary(dictionaryPath)
		if err != nil {
			gologger.Error().Msgf("failed to read dictionary %v got %v", dictionaryPath, err)
		}
		if dictionary == nil {
			gologger.Info().Msgf("Dictionary file `%v` not available, clash detection disabled", dictionaryPath)
		}
		report := &oneaway.Report{Dictionary: dictionary, LineFormat: lineFormat}
		for _, word := range cliOpts.Words {
			variants, err := gen.VariantsFor(word)
			if err != nil {
				gologger.Error().Msgf("failed to generate variants for %v got %v", word, err)
				continue
			}
			if err := report.Write(output, word, variants); err != nil {
				gologger.Fatal().Msgf("failed to write report got %v", err)
			}
		}
		return
	}

	if err = gen.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
