package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// CLI flags
	numProcesses int      // number of processes to synthesize
	seed         int64    // master seed for workload and interrupt draws
	quantum      uint     // round-robin time slice (ticks)
	tickBudget   uint     // defensive per-engine tick cap
	logLevel     string   // log verbosity level
	configPath   string   // optional runtime config file (YAML)
	workloadPath string   // optional workload spec file (YAML)
	policyNames  []string // subset of policies to simulate
	showGantt    bool     // render the per-tick gantt chart per policy
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-tick simulator for CPU scheduling policies",
}

// runCmd executes the six-policy comparison using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := LoadConfig(configPath)
		if cmd.Flags().Changed("quantum") || cfg.Quantum == 0 {
			cfg.Quantum = quantum
		}
		if cmd.Flags().Changed("tick-budget") || cfg.TickBudget == 0 {
			cfg.TickBudget = tickBudget
		}
		if cmd.Flags().Changed("log") || cfg.LogLevel == "" {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("policies") || len(cfg.Policies) == 0 {
			cfg.Policies = policyNames
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		// Resolve the policy set
		policies := make([]sim.Policy, 0, len(cfg.Policies))
		for _, name := range cfg.Policies {
			p, err := sim.ParsePolicy(name)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			policies = append(policies, p)
		}
		if len(policies) == 0 {
			policies = sim.AllPolicies
		}

		// Resolve the workload spec
		var spec *workload.Spec
		if workloadPath != "" {
			spec, err = workload.LoadSpec(workloadPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		} else {
			s := workload.DefaultSpec(numProcesses)
			s.Seed = seed
			spec = &s
		}

		rng := sim.NewPartitionedRNG(spec.Seed)
		procs, err := workload.Generate(spec, rng.ForSubsystem(sim.SubsystemWorkload))
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		report.WriteWorkload(os.Stdout, procs)

		engines, err := sim.RunAll(policies, procs, rng, cfg.Quantum, cfg.TickBudget)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		results := make([]trace.PolicyResult, 0, len(engines))
		for _, e := range engines {
			result, err := e.Result()
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			results = append(results, result)

			os.Stdout.WriteString("\n# " + e.Policy().Name() + " Algorithm\n\n")
			if showGantt {
				report.WriteGantt(os.Stdout, e.Trace())
			}
			report.WriteResult(os.Stdout, result)
		}

		report.WriteSummary(os.Stdout, trace.Summarize(results))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVarP(&numProcesses, "processes", "n", 10, "Number of processes to generate")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation and interrupt draws")
	runCmd.Flags().UintVar(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time quantum (ticks)")
	runCmd.Flags().UintVar(&tickBudget, "tick-budget", sim.DefaultTickBudget, "Abort an engine after this many ticks without termination")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Runtime config file (YAML)")
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Workload spec file (YAML); overrides --processes/--seed")
	runCmd.Flags().StringSliceVar(&policyNames, "policies", nil, "Comma-separated policy subset (default: all six)")
	runCmd.Flags().BoolVar(&showGantt, "gantt", true, "Render the per-tick gantt chart for each policy")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
