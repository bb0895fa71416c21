package main

import (
	"os"

	"github.com/ibtiwahab/urbangen/internal/server"
	"github.com/ibtiwahab/urbangen/pkg/plan"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "urbangen",
		Short: "Parametric building layout engine",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(offsetCmd())
	rootCmd.AddCommand(intersectCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [request.yaml]",
		Short: "Generate a building layout for a site boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], seed)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "placement RNG seed (overrides the request)")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [request.yaml]",
		Short: "Report the geometric properties of a site boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [request.yaml]",
		Short: "Run the geometry checks without generating a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func offsetCmd() *cobra.Command {
	var distance float64
	var outward bool

	cmd := &cobra.Command{
		Use:   "offset [request.yaml]",
		Short: "Inset or expand a site boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOffset(args[0], distance, outward)
		},
	}

	cmd.Flags().Float64VarP(&distance, "distance", "d", 3.0, "offset distance in meters")
	cmd.Flags().BoolVar(&outward, "outward", false, "expand instead of inset")
	return cmd
}

func intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect [a.yaml] [b.yaml]",
		Short: "Classify how two site boundaries relate",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runIntersect(args[0], args[1])
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the engine's limits and vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printJSON(plan.EngineInfo())
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
