// Package main provides the CLI entry point for sheetshift-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/output"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

var (
	outputPath string
	pretty     bool
	format     string
	notation   string
	sheetName  string
	verbose    bool

	op       string
	at       int
	count    int
	savePath string

	anchor string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetshift",
		Short: "Insert and delete rows and columns in Excel files",
		Long: `sheetshift-go applies row and column insertions and deletions to a sheet
and reports how merged cells, hyperlinks, conditional formats, data
validations, tables and defined names move.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug records to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.PersistentFlags().StringVar(&notation, "notation", "a1", "Reference notation: a1, r1c1")

	rootCmd.AddCommand(newShiftCmd(), newInspectCmd(), newParseCmd(), newRefsCmd())
	return rootCmd
}

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift [input.xlsx]",
		Short: "Apply a structural edit and report the moved objects",
		Args:  cobra.ExactArgs(1),
		RunE:  runShift,
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to edit (default: first sheet)")
	cmd.Flags().StringVar(&op, "op", "", "Operation: insert-rows, insert-columns, delete-rows, delete-columns")
	cmd.Flags().IntVar(&at, "at", 1, "First row or column inserted or deleted")
	cmd.Flags().IntVar(&count, "count", 1, "Number of rows or columns")
	cmd.Flags().StringVar(&savePath, "save", "", "Write the shifted workbook to this path")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "List the coordinate-bearing objects of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to inspect (default: all sheets)")
	return cmd
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [reference]",
		Short: "Resolve a reference and print it in both notations",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVar(&anchor, "anchor", "A1", "Cell relative references are resolved from")
	return cmd
}

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs [formula]",
		Short: "List the references of a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  runRefs,
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parseNotation() (coord.Notation, error) {
	n, err := coord.ParseNotation(notation)
	if err != nil {
		return 0, fmt.Errorf("invalid notation: %s (must be a1 or r1c1)", notation)
	}
	return n, nil
}

func runShift(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Parse operation
	shiftOp, err := shift.ParseOp(op)
	if err != nil {
		return fmt.Errorf("invalid op: %s (must be insert-rows, insert-columns, delete-rows or delete-columns)", op)
	}
	n, err := parseNotation()
	if err != nil {
		return err
	}

	opts := sheetshift.Options{
		Sheet:    sheetName,
		Op:       shiftOp,
		At:       at,
		Count:    count,
		Notation: n,
		SavePath: savePath,
		Logger:   slog.Default(),
	}

	report, err := sheetshift.Shift(inputPath, opts)
	if err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}
	return write(report)
}

func runInspect(cmd *cobra.Command, args []string) error {
	n, err := parseNotation()
	if err != nil {
		return err
	}
	opts := sheetshift.DefaultOptions()
	opts.Notation = n
	opts.Logger = slog.Default()

	wb, err := sheetshift.Inspect(args[0], sheetName, opts)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	return write(wb)
}

// parsedReference is the parse command's output.
type parsedReference struct {
	Input    string `json:"input" yaml:"input"`
	Sheet    string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	Anchor   string `json:"anchor" yaml:"anchor"`
	Resolved string `json:"resolved" yaml:"resolved"`
	A1       string `json:"a1" yaml:"a1"`
	R1C1     string `json:"r1c1" yaml:"r1c1"`
}

func runParse(cmd *cobra.Command, args []string) error {
	n, err := parseNotation()
	if err != nil {
		return err
	}
	ra, err := ref.Parse(args[0], n)
	if err != nil {
		return err
	}
	p, err := coord.ParsePoint(anchor)
	if err != nil {
		return fmt.Errorf("invalid anchor: %w", err)
	}

	return write(parsedReference{
		Input:    args[0],
		Sheet:    ra.Sheet,
		Anchor:   p.String(),
		Resolved: ra.Resolve(p).String(),
		A1:       ra.FormatA1(p, true),
		R1C1:     ra.FormatR1C1(p, true),
	})
}

// formulaRefs is the refs command's output. Operands is only filled for
// A1 formulas.
type formulaRefs struct {
	Formula    string   `json:"formula" yaml:"formula"`
	References []string `json:"references" yaml:"references"`
	Operands   []string `json:"operands,omitempty" yaml:"operands,omitempty"`
}

func runRefs(cmd *cobra.Command, args []string) error {
	n, err := parseNotation()
	if err != nil {
		return err
	}
	formula := ref.Split(args[0], n)
	result := formulaRefs{Formula: args[0], References: []string{}}
	for _, t := range formula.Tokens {
		result.References = append(result.References, t.Text)
	}
	if n == coord.NotationA1 {
		result.Operands = ref.Operands(args[0])
	}
	return write(result)
}

func write(v any) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := output.Marshal(v, f, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
