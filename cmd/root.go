// Package cmd provides command-line interface commands for repoview
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeisme/repoview/pkg/configs"
	"github.com/yeisme/repoview/pkg/context"
	log2 "github.com/yeisme/repoview/pkg/utils/log"
	"github.com/yeisme/repoview/pkg/utils/version"
)

var (
	repoviewCtx *context.RepoviewContext
	log         log2.Logger

	// Global flags
	configPathFlag    string
	debugFlag         bool
	verboseFlag       bool
	quietFlag         bool
	versionEnableFlag bool

	// Scan flags
	pathsFlag  []string
	prettyFlag bool
	statsFlag  bool
	formatFlag string
	colorFlag  bool
)

// rootCmd represents the base command: scan a directory tree and print the
// technology-inventory report as a single JSON document on stdout
var rootCmd = &cobra.Command{
	Use:   "repoview [path]",
	Short: "repoview inspects local directory trees and reports their technology stack",
	Long: strings.TrimSpace(`
repoview scans one or more local directories and prints a structured
technology-inventory report on stdout: language composition by byte volume,
detected frameworks/tools, project-layout tags and infrastructure/CI signals.

The scan is local, offline and read-only. Logs go to stderr so stdout always
carries exactly one JSON document that other tools can embed verbatim.

Examples:
  # Scan the current directory
  repoview

  # Scan a specific directory with indented output
  repoview ./myproject --pretty

  # Scan several roots and merge them into one report
  repoview --paths ./frontend ./backend

  # Print timing and counters to stderr after the report
  repoview ./myproject --stats

  # Human-oriented output formats (json stays the machine contract)
  repoview ./myproject --format table
  repoview ./myproject --format markdown
`),
	Args: func(cmd *cobra.Command, args []string) error {
		// --paths 打开时位置参数作为附加扫描根，数量不限
		if len(pathsFlag) > 0 {
			return nil
		}
		return cobra.MaximumNArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		runScan(cmd, args)
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ctx := context.InitRepoviewContext(configPathFlag, debugFlag, verboseFlag, quietFlag)

		repoviewCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "repoview", strings.Join(os.Args[1:], " "))
	},
}

// scanStats 汇总 --stats 输出所需的数字
type scanStats struct {
	Elapsed    time.Duration
	Languages  int
	Frameworks int
	Infra      int
}

// printStats 在报告之后向 stderr 输出一行统计信息
func printStats(s scanStats) {
	fmt.Fprintf(os.Stderr, "Scanned in %.1fms | %d languages | %d frameworks | %d infra signals\n",
		float64(s.Elapsed.Microseconds())/1000.0,
		s.Languages,
		s.Frameworks,
		s.Infra,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")

	rootCmd.Flags().StringSliceVar(&pathsFlag, "paths", nil, "scan multiple directories and merge results (positional paths join the set; comma-separated and repeated forms also work)")
	rootCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "pretty-print the JSON report")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false, "print scan stats to stderr")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "output format: "+strings.Join(configs.ValidFormats(), ", "))
	rootCmd.Flags().BoolVar(&colorFlag, "color", false, "highlight JSON output on the terminal (not embeddable)")
}
