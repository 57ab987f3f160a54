package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-tangra/hardinfo/internal/collector"
	"github.com/go-tangra/hardinfo/internal/config"
	"github.com/go-tangra/hardinfo/internal/hardware"
	"github.com/go-tangra/hardinfo/internal/query"
	"github.com/go-tangra/hardinfo/internal/render"
	"github.com/go-tangra/hardinfo/internal/snapshot"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var (
	cfgFile   string
	inputFile string
)

var rootCmd = &cobra.Command{
	Use:   "hardinfo",
	Short: "hardinfo - Linux hardware inventory from lshw and friends",
	Long: `hardinfo runs the standard Linux hardware-detection commands (lshw,
lsblk, lscpu), materializes their JSON output into a typed component
tree, and lets you browse, check, and query the result.

Run without a subcommand to show the hardware tree (equivalent to 'tree').`,
	RunE: runTree,
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect a hardware snapshot and save the raw document",
	RunE:  runCollect,
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the hardware component tree",
	RunE:  runTree,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show property sheets for nodes of one hardware class",
	RunE:  runShow,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the integrity check over a snapshot",
	RunE:  runCheck,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the raw document by path or attribute name",
	RunE:  runQuery,
}

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show host identification from uname and the SMBIOS tables",
	RunE:  runHost,
}

var blkCmd = &cobra.Command{
	Use:   "blk",
	Short: "Collect and print the lsblk block-device document",
	RunE:  runBlk,
}

var cpusCmd = &cobra.Command{
	Use:   "cpus",
	Short: "Collect and print the lscpu topology document",
	RunE:  runCpus,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hardinfo %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/hardinfo.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "read the raw lshw JSON document from a file instead of running lshw")
	rootCmd.PersistentFlags().String("lshw", "", "path to the lshw binary (default lshw)")
	rootCmd.PersistentFlags().Bool("sudo", false, "run lshw under sudo -n")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-command timeout (default 30s)")

	collectCmd.Flags().StringP("output", "o", "", "snapshot directory (default from config)")

	showCmd.Flags().String("class", "", "hardware class to show (cpu, disk, memory, ...)")
	showCmd.Flags().String("id", "", "exact node id to show (e.g. cpu:0)")

	checkCmd.Flags().Bool("strict", false, "exit non-zero when any integrity mismatch is found")

	queryCmd.Flags().String("path", "", "dotted document path (e.g. children.0.children.1.product)")
	queryCmd.Flags().String("attr", "", "attribute name to scan for at any depth")
	queryCmd.Flags().String("value", "", "restrict --attr matches to this exact value")

	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(blkCmd)
	rootCmd.AddCommand(cpusCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies CLI flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("lshw"); v != "" {
		cfg.LshwPath = v
	}
	if cmd.Flags().Changed("sudo") {
		cfg.UseSudo, _ = cmd.Flags().GetBool("sudo")
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	hardware.RegisterCPUFlags(cfg.ExtraCPUFlags)
	return cfg, nil
}

// signalContext cancels on SIGINT / SIGTERM so a stuck privileged
// command can be abandoned cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// takeSnapshot materializes from --input when given, otherwise runs the
// lshw collector.
func takeSnapshot(ctx context.Context, cfg *config.Config) (*snapshot.Snapshot, error) {
	if inputFile != "" {
		return snapshot.Load(inputFile)
	}

	lshw := collector.NewLshw(collector.NewRunner(cfg.Timeout), cfg.LshwPath, cfg.UseSudo)
	return snapshot.Take(ctx, lshw)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	snap, err := takeSnapshot(ctx, cfg)
	if err != nil {
		return err
	}

	dir := cfg.SnapshotDir
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		dir = v
	}

	path, err := snap.Save(dir)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot %s: %d components, %d integrity mismatches\n",
		snap.ID, snap.Root.Count(), snap.IntegrityErrors)
	fmt.Printf("raw document written to %s\n", path)
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	snap, err := takeSnapshot(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(render.Tree(snap.Root))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	snap, err := takeSnapshot(ctx, cfg)
	if err != nil {
		return err
	}

	className, _ := cmd.Flags().GetString("class")
	nodeID, _ := cmd.Flags().GetString("id")
	if className == "" && nodeID == "" {
		return fmt.Errorf("one of --class or --id is required")
	}

	var nodes []*hardware.Node
	if nodeID != "" {
		snap.Root.Walk(func(n *hardware.Node) bool {
			if n.ID() == nodeID {
				nodes = append(nodes, n)
			}
			return true
		})
	} else {
		class, err := hardware.Classify(className)
		if err != nil {
			return err
		}
		nodes = hardware.FindClass(snap.Root, class)
	}

	if len(nodes) == 0 {
		return fmt.Errorf("no matching components")
	}
	for _, n := range nodes {
		fmt.Println(render.Properties(n))
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	snap, err := takeSnapshot(ctx, cfg)
	if err != nil {
		return err
	}

	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict, _ = cmd.Flags().GetBool("strict")
	}

	if snap.IntegrityErrors == 0 {
		fmt.Printf("ok: %d components, no integrity mismatches\n", snap.Root.Count())
	} else {
		fmt.Println(render.IntegrityTable(snap.Reports))
	}

	// Newer CPUs may carry flags the schema snapshot does not know yet.
	for _, cpu := range hardware.FindClass(snap.Root, hardware.ClassCPU) {
		if caps := cpu.CPU(); caps != nil {
			if unknown := caps.Unknown(); len(unknown) > 0 {
				fmt.Printf("note: %s reports capability flags outside the schema: %v\n", cpu.ID(), unknown)
			}
		}
	}

	if strict && snap.IntegrityErrors > 0 {
		return fmt.Errorf("%d integrity mismatches", snap.IntegrityErrors)
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	snap, err := takeSnapshot(ctx, cfg)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("path")
	attr, _ := cmd.Flags().GetString("attr")
	value, _ := cmd.Flags().GetString("value")

	switch {
	case path != "":
		v, ok := query.Get(snap.Raw, path)
		if !ok {
			return fmt.Errorf("no value at %s", path)
		}
		fmt.Println(v)
	case attr != "" && value != "":
		for _, occ := range query.FindValue(snap.Raw, attr, value) {
			fmt.Printf("%s\t%s\n", occ.Path, occ.Value)
		}
	case attr != "":
		for _, occ := range query.FindAttribute(snap.Raw, attr) {
			fmt.Printf("%s\t%s\n", occ.Path, occ.Value)
		}
	default:
		return fmt.Errorf("one of --path or --attr is required")
	}
	return nil
}

func runHost(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	info, err := collector.CollectHost()
	if err != nil {
		log.WithError(err).Warn("partial host information")
	}
	if info == nil {
		return fmt.Errorf("no host information available")
	}

	return printJSON(info)
}

func runBlk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	lsblk := collector.NewLsblk(collector.NewRunner(cfg.Timeout), cfg.LsblkPath)
	doc, _, err := lsblk.Collect(ctx)
	if err != nil {
		return err
	}
	return printJSON(doc)
}

func runCpus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	lscpu := collector.NewLscpu(collector.NewRunner(cfg.Timeout), cfg.LscpuPath)
	doc, _, err := lscpu.Collect(ctx)
	if err != nil {
		return err
	}
	return printJSON(doc)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
