package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Words              goflags.StringSlice // words to generate variants for
	Operators          goflags.StringSlice // explicit operator list
	Preset             string              // named operator preset
	Dictionary         string              // word list for clash detection
	Format             string              // report line template
	Output             string
	Config             string
	PermutationConfig  string
	Estimate           bool
	Report             bool
	Domains            bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	Limit              int
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generate single-edit typo variants (dropped, swapped, fat-fingered letters) for words.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Words, "list", "l", nil, "words to generate typo variants for (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.Domains, "domain", "d", false, "treat inputs as domains and only permute the leftmost label"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate variant count without generating output"),
		flagSet.BoolVarP(&opts.Report, "report", "rp", false, "write a per-word report with dictionary clashes and a regex alternation"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write generated variants"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "report line template (placeholders: {{variant}}, {{clash}})"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display oneaway version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `oneaway cli config file (default '$HOME/.config/oneaway/config.yaml')`),
		flagSet.StringVar(&opts.PermutationConfig, "oc", "", `oneaway generation config file (preset, operators, dictionary, format)`),
		flagSet.StringVarP(&opts.Preset, "preset", "ps", "", "operator preset to apply (common, mix) (default common)"),
		flagSet.StringSliceVarP(&opts.Operators, "operators", "op", nil, "explicit operator list, overrides preset (dropped, swapped, casing, horizontal, vertical)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Dictionary, "dictionary", "dict", "", "word list used for clash detection (default '/usr/share/dict/words')"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update oneaway to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic oneaway update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("oneaway")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("oneaway version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current oneaway version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Words = strings.Fields(string(bin))
	}

	if len(opts.Words) == 0 {
		gologger.Fatal().Msgf("oneaway: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
