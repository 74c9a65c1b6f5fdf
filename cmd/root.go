package cmd

import (
	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pretty"
	"github.com/joshyorko/transitive-sbom/xviper"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	silentFlag  bool
	debugFlag   bool
	traceFlag   bool
	jsonFlag    bool
	inputFile   string
	outputFile  string
	searchPaths []string
	mermaidFlag bool
	treeFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   common.PRODUCT_NAME,
	Short: "Enrich an SPDX SBOM with transitive detail from supplemental SBOMs.",
	Long: `Enrich an SPDX SBOM with transitive detail from supplemental SBOMs.

Every package of the input document, and everything reachable from it, gets
its detail from the first supplemental document describing the same package
name and version. Dependencies and contents known only to the supplemental
documents are added as stub packages with matching relationship pairs.

Examples:
  # Merge detail from all SBOMs under vendor/
  transitive-sbom -i app.spdx.json -o merged.spdx.json -p 'vendor/**/*.spdx.json'

  # Merge and show the result as a mermaid mindmap
  transitive-sbom -i app.spdx.json -o merged.spdx.json -p sboms/*.json --mermaid`,
	Version:       common.Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		err := xviper.Load(configFile)
		if len(configFile) == 0 {
			common.Uncritical("default settings", err)
		} else {
			pretty.Guard(err == nil, 1, "%v", err)
		}
		bindFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Transitive merge lasted").Report()
		}

		if !xviper.IsSet("input") && !xviper.IsSet("output") && cmd.Flags().NFlag() == 0 {
			common.Error("help", cmd.Help())
			return
		}
		input := xviper.GetString("input")
		output := xviper.GetString("output")
		pretty.Guard(len(input) > 0, 1, "Missing input file argument")
		pretty.Guard(len(output) > 0, 1, "Missing output file argument")

		patterns, err := xviper.GetPatterns("paths")
		pretty.Guard(err == nil, 1, "Bad supplemental paths: %v", err)

		outcome, err := Merge(input, output, patterns)
		if err != nil {
			common.Fatal("merge", err)
			panic(err)
		}

		common.Stdout("Output written to %s\n", output)
		if jsonFlag {
			showSummary(outcome.Summary)
		} else {
			summary := outcome.Summary
			pretty.Highlight("Merged %d packages, added %d stubs and %d relationships.", summary.Merged, summary.Stubs, summary.Relationships)
		}
		if xviper.GetBool("mermaid") {
			common.Stdout("\n%s", renderMermaid(outcome.Document))
		}
		if xviper.GetBool("tree") {
			showTree(outcome.Document)
		}
		pretty.Ok()
	},
}

// bindFlags lets command line flags win over environment and settings.
func bindFlags(cmd *cobra.Command) {
	for key, name := range map[string]string{
		"input":   "input",
		"output":  "output",
		"paths":   "path",
		"mermaid": "mermaid",
		"tree":    "tree",
	} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		err := xviper.BindFlag(key, flag)
		pretty.Guard(err == nil, 1, "Could not bind flag %q: %v", name, err)
	}
}

// Execute runs the command tree. Usage errors become controlled exits.
func Execute() {
	defer common.Timeline("command done")

	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "%v", err)
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default is $TRANSITIVE_SBOM_HOME/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be less verbose on output.")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Show debug messages.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Show more detailed trace messages.")
	rootCmd.PersistentFlags().BoolVarP(&jsonFlag, "json", "j", false, "Output summary in JSON format.")

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input SPDX document (.json, .yaml or .yml)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output SPDX document (.json, .yaml or .yml)")
	rootCmd.Flags().StringArrayVarP(&searchPaths, "path", "p", nil, "Supplemental SBOM search path or glob pattern (repeatable)")
	rootCmd.Flags().BoolVarP(&mermaidFlag, "mermaid", "", false, "Print a mermaid mindmap of the merged document.")
	rootCmd.Flags().BoolVarP(&treeFlag, "tree", "", false, "Print a tree of the merged document.")
}
