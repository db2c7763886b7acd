package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dummygen/internal/generate"
	"dummygen/internal/randsrc"
	"dummygen/internal/sink"
	"dummygen/internal/sizing"
	"dummygen/pkg/config"
)

var version = "dev"

const appName = "dummygen"

func main() {
	cfg, err := config.ParseFlags(appName)
	if err != nil {
		fatal(err)
	}

	// Resolve the target interactively when no flag or profile supplied one.
	if cfg.TargetMB == 0 {
		cfg.TargetMB = interactiveTargetMBMenu(bufio.NewReader(os.Stdin))
	}

	types, unknown, err := cfg.EnabledTypes()
	if len(unknown) > 0 {
		fmt.Printf("⚠️  Warning: unsupported extensions ignored: %s\n", strings.Join(unknown, ", "))
	}
	if err != nil {
		fatal(err)
	}

	table := sizing.BuildTable(types, cfg.DefaultRanges(), cfg.MinSizeKB, cfg.MaxSizeKB)

	if cfg.ApproxFiles > 0 {
		est, err := sizing.EstimateRange(cfg.TargetBytes(), cfg.ApproxFiles)
		if err != nil {
			fatal(err)
		}
		if !cfg.Quiet {
			fmt.Printf("🔧 Auto-tuning size range for ~%d files: min ≈ %d KB, max ≈ %d KB\n",
				cfg.ApproxFiles, est.Min/1024, est.Max/1024)
		}
		table = table.Override(est)
	}

	if !cfg.Quiet {
		cfg.PrintConfig(appName + " " + version)
		if cfg.Verbose {
			fmt.Println("\nResolved size ranges:")
			for _, ext := range types {
				r := table.Lookup(ext)
				fmt.Printf("  .%s: %d-%d KB\n", ext, r.Min/1024, r.Max/1024)
			}
		}
		fmt.Println()
	}

	payload, err := randsrc.Payload(cfg.Seed)
	if err != nil {
		fatal(err)
	}

	var probe *generate.CompressionProbe
	if cfg.Benchmark && !cfg.DryRun {
		probe = generate.NewCompressionProbe(payload)
		payload = probe
	}

	fileSink := sink.New(cfg.OutDir, payload, cfg.DryRun, cfg.BufferSize)

	if cfg.Force && !cfg.DryRun {
		removed, err := fileSink.Clean()
		if err != nil {
			fatal(err)
		}
		if removed > 0 && !cfg.Quiet {
			fmt.Printf("🧹 Removed %d previously generated files from %s\n", removed, cfg.OutDir)
		}
	}

	plan := generate.Plan{
		TargetBytes: cfg.TargetBytes(),
		Types:       types,
		Ranges:      table,
		DryRun:      cfg.DryRun,
	}
	alloc := sizing.NewAllocator(randsrc.SizeRNG(cfg.Seed), sizing.GlobalMinFileSize)

	var progress generate.Progress
	if !cfg.Quiet {
		progress = func(percent int, files, totalBytes int64) {
			fmt.Printf("[%3d%%] Files: %6d | Total: %8.2f MB\r",
				percent, files, float64(totalBytes)/(1024*1024))
		}
	}

	result, err := generate.Run(plan, alloc, fileSink, progress)
	if err != nil {
		fatal(err)
	}

	printSummary(cfg, plan, result, probe)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	os.Exit(1)
}

// interactiveTargetMBMenu asks the user for the dataset size. An invalid
// menu choice falls back to 1 GB; an invalid custom size is re-prompted
// until a positive integer arrives.
func interactiveTargetMBMenu(in *bufio.Reader) int64 {
	fmt.Println("Select data size to generate:")
	fmt.Println("  1) 100 MB")
	fmt.Println("  2) 500 MB")
	fmt.Println("  3) 1 GB  (1024 MB)")
	fmt.Println("  4) 2 GB  (2048 MB)")
	fmt.Println("  5) Custom size (MB)")
	fmt.Print("Enter choice (1-5): ")

	switch readLine(in) {
	case "1":
		return 100
	case "2":
		return 500
	case "3":
		return 1024
	case "4":
		return 2048
	case "5":
		for {
			fmt.Print("Enter custom size in MB: ")
			mb, err := strconv.ParseInt(readLine(in), 10, 64)
			if err != nil {
				fmt.Println("Invalid number, try again.")
				continue
			}
			if mb <= 0 {
				fmt.Println("Please enter a positive integer.")
				continue
			}
			return mb
		}
	default:
		fmt.Println("Invalid choice, defaulting to 1 GB (1024 MB).")
		return 1024
	}
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}

func printSummary(cfg *config.Config, plan generate.Plan, result *generate.Result, probe *generate.CompressionProbe) {
	if cfg.Quiet {
		return
	}

	fmt.Println()
	fmt.Println()
	if cfg.DryRun {
		fmt.Println("✨ Done! (dry run, no files were created)")
	} else {
		fmt.Println("✨ Done!")
	}
	fmt.Printf("Created %d files in %s\n", result.Files, cfg.OutDir)
	fmt.Printf("Total size: %.2f MB (%d bytes)\n", float64(result.TotalBytes)/(1024*1024), result.TotalBytes)
	fmt.Printf("Time taken: %.2f seconds (%s)\n", result.Elapsed.Seconds(), formatRate(result.BytesPerSec))
	if probe != nil && probe.Samples() > 0 {
		fmt.Printf("Compressibility: ratio %.3f over %d sampled blocks\n", probe.Ratio(), probe.Samples())
	}

	fmt.Println("\nFile count by extension:")
	for _, ext := range plan.Types {
		fmt.Printf("  .%s: %d files\n", ext, result.CountsByType[ext])
	}
}

func formatRate(bytesPerSec float64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytesPerSec >= GB:
		return fmt.Sprintf("%.1f GB/s", bytesPerSec/GB)
	case bytesPerSec >= MB:
		return fmt.Sprintf("%.1f MB/s", bytesPerSec/MB)
	case bytesPerSec >= KB:
		return fmt.Sprintf("%.1f KB/s", bytesPerSec/KB)
	default:
		return fmt.Sprintf("%.1f B/s", bytesPerSec)
	}
}
