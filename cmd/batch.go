package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcm/internal/job"
	"github.com/spf13/cobra"
)

var (
	batchFile        string
	batchOutput      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Design every member in a YAML job file",
	Long: `Design every member listed in a YAML job file.

Members are designed in parallel and results are reported in file
order. A member that fails to design does not stop the run; its error
is recorded alongside the successful results.

Example job file:

  name: second-floor
  members:
    - name: B-1
      kind: beam
      geometry: {width: 300, height: 500, clearCover: 40, span: 6000}
      material: {fc: 30, fy: 400}
      forces: {moment: 180, shear: 120}
    - name: C-1
      kind: column
      geometry: {width: 400, height: 400, clearCover: 40}
      material: {fc: 28, fy: 415}
      forces: {axial: 2000}

Examples:
  gorcm batch -f job.yaml
  gorcm batch -f job.yaml -o results.json`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Job file to run (YAML)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write full results as JSON to this file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Max members designed in parallel (default: number of CPUs)")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) {
	j, err := job.Load(batchFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	results := j.Run(context.Background(), batchConcurrency)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          BATCH DESIGN: %s\n", j.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tKind\tMain Bars\tφMn (kN-m)\tCost\tStatus\n")
	fmt.Fprintf(w, "  ──────\t────\t─────────\t──────────\t────\t──────\n")

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(w, "  %s\t\t\t\t\tERROR: %s\n", r.Name, r.Error)
			continue
		}
		res := r.Result
		status := "PASS"
		if !res.IsValid {
			failed++
			status = "FAIL"
		}
		main := res.Reinforcement.Main
		fmt.Fprintf(w, "  %s\t%s\t%d-φ%.0f\t%.2f\t%.2f\t%s\n",
			r.Name, res.Kind, main.Count, main.Dia,
			res.Capacity.PhiMn, res.Cost.Total, status)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d member(s), %d adequate, %d flagged\n", len(results), len(results)-failed, failed)
	fmt.Println()

	if batchOutput != "" {
		if err := writeBatchJSON(batchOutput, results); err != nil {
			fmt.Printf("Error writing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Full results written to %s\n", batchOutput)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func writeBatchJSON(path string, results []job.MemberResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		f.Close()
		return fmt.Errorf("encoding results: %w", err)
	}
	return f.Close()
}
