package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"dummygen/internal/sizing"
	"dummygen/pkg/profile"
)

// String defaults are overrideable at build time via -ldflags -X
// Example: -ldflags "-X 'dummygen/pkg/config.DefaultOutDirStr=/srv/dummy'"
var (
	DefaultOutDirStr        = "dummy_data_output"
	DefaultTargetMBStr      = "0" // 0 -> interactive menu decides
	DefaultApproxFilesStr   = "0"
	DefaultExtStr           = "" // empty -> all supported types
	DefaultMinSizeKBStr     = "0"
	DefaultMaxSizeKBStr     = "0"
	DefaultSeedStr          = "0"     // 0 -> time-based
	DefaultBufferSizeStr    = "65536" // bytes
	DefaultDryRunStr        = "false"
	DefaultNoInteractiveStr = "false"
	DefaultForceStr         = "false"
	DefaultBenchmarkStr     = "false"
	DefaultQuietStr         = "false"
	DefaultVerboseStr       = "false"
	DefaultProfilePathStr   = ""
)

type Config struct {
	OutDir        string
	TargetMB      int64
	ApproxFiles   int64
	Ext           string
	MinSizeKB     int64
	MaxSizeKB     int64
	Seed          int64
	BufferSize    int
	DryRun        bool
	NoInteractive bool
	Force         bool
	Benchmark     bool
	Quiet         bool
	Verbose       bool
	ProfilePath   string
	ProfileName   string
	ActiveProfile *profile.Profile

	// Flags the user passed explicitly; these always win over profile values.
	setFlags map[string]bool
}

func DefaultConfig() *Config {
	bufferSize := parseIntOr(DefaultBufferSizeStr, 64*1024)
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}

	return &Config{
		OutDir:        orString(DefaultOutDirStr, "dummy_data_output"),
		TargetMB:      parseInt64Or(DefaultTargetMBStr, 0),
		ApproxFiles:   parseInt64Or(DefaultApproxFilesStr, 0),
		Ext:           orString(DefaultExtStr, ""),
		MinSizeKB:     parseInt64Or(DefaultMinSizeKBStr, 0),
		MaxSizeKB:     parseInt64Or(DefaultMaxSizeKBStr, 0),
		Seed:          parseInt64Or(DefaultSeedStr, 0),
		BufferSize:    bufferSize, // bytes
		DryRun:        parseBoolOr(DefaultDryRunStr, false),
		NoInteractive: parseBoolOr(DefaultNoInteractiveStr, false),
		Force:         parseBoolOr(DefaultForceStr, false),
		Benchmark:     parseBoolOr(DefaultBenchmarkStr, false),
		Quiet:         parseBoolOr(DefaultQuietStr, false),
		Verbose:       parseBoolOr(DefaultVerboseStr, false),
		ProfilePath:   orString(DefaultProfilePathStr, ""),
		setFlags:      map[string]bool{},
	}
}

func ParseFlags(appName string) (*Config, error) {
	config := DefaultConfig()

	flag.StringVar(&config.OutDir, "out", config.OutDir, "Output directory for generated files")
	flag.Int64Var(&config.TargetMB, "target-mb", config.TargetMB, "Total size to generate in MB (required with -no-interactive)")
	flag.Int64Var(&config.ApproxFiles, "approx-files", config.ApproxFiles, "Approximate number of files; auto-tunes the size range around target/approx")
	flag.StringVar(&config.Ext, "ext", config.Ext, "Comma-separated list of extensions to use, e.g. 'txt,pdf,png' (default: all supported)")
	flag.Int64Var(&config.MinSizeKB, "min-size-kb", config.MinSizeKB, "Override minimum file size (KB) for all types")
	flag.Int64Var(&config.MaxSizeKB, "max-size-kb", config.MaxSizeKB, "Override maximum file size (KB) for all types")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Random seed for reproducible runs (0 = time-based)")
	flag.IntVar(&config.BufferSize, "buffer-size", config.BufferSize, "I/O buffer size in bytes")
	flag.BoolVar(&config.DryRun, "dry-run", config.DryRun, "Plan and print stats without creating any files")
	flag.BoolVar(&config.NoInteractive, "no-interactive", config.NoInteractive, "Disable interactive prompts; requires -target-mb")
	flag.BoolVar(&config.Force, "force", config.Force, "Remove previously generated files from the output directory first")
	flag.BoolVar(&config.Benchmark, "benchmark", config.Benchmark, "Measure payload compressibility while generating")
	flag.BoolVar(&config.Quiet, "quiet", config.Quiet, "Suppress non-error output")
	flag.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose output")
	flag.StringVar(&config.ProfilePath, "profile", config.ProfilePath, "Path to a generation profile YAML")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", appName)
		fmt.Fprintf(os.Stderr, "\nGenerates a flat directory of dummy files totalling roughly a target size,\n")
		fmt.Fprintf(os.Stderr, "rotating through file types with per-type size ranges.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -target-mb 500 -no-interactive\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -target-mb 1024 -approx-files 2000 -ext txt,png -seed 42\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -profile profiles/demo.yaml -dry-run\n", appName)
	}

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		config.setFlags[f.Name] = true
	})

	// Load profile (CLI path has priority, otherwise embedded definition)
	var loadedProfile *profile.Profile
	if config.ProfilePath != "" {
		loaded, err := profile.LoadFile(config.ProfilePath)
		if err != nil {
			return nil, err
		}
		loadedProfile = loaded
	} else if profile.HasEmbedded() {
		loaded, err := profile.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		loadedProfile = loaded
	}

	if loadedProfile != nil {
		config.applyProfile(loadedProfile)
		config.ActiveProfile = loadedProfile
		config.ProfileName = loadedProfile.Name
		if config.ProfilePath == "" {
			config.ProfilePath = loadedProfile.Source
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	if c.setFlags["target-mb"] && c.TargetMB <= 0 {
		return fmt.Errorf("-target-mb must be a positive integer")
	}

	if c.TargetMB < 0 {
		return fmt.Errorf("target size cannot be negative")
	}

	if c.NoInteractive && c.TargetMB == 0 {
		return fmt.Errorf("-target-mb is required when -no-interactive is set")
	}

	if c.ApproxFiles < 0 || (c.setFlags["approx-files"] && c.ApproxFiles == 0) {
		return fmt.Errorf("-approx-files must be a positive integer")
	}

	if c.MinSizeKB < 0 || c.MaxSizeKB < 0 {
		return fmt.Errorf("size overrides cannot be negative")
	}

	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be greater than 0")
	}

	return nil
}

// applyProfile copies profile values into the config, skipping anything the
// user already pinned down with an explicit flag.
func (c *Config) applyProfile(prof *profile.Profile) {
	if prof.OutDir != "" && !c.setFlags["out"] {
		c.OutDir = prof.OutDir
	}
	if prof.TargetMB > 0 && !c.setFlags["target-mb"] {
		c.TargetMB = prof.TargetMB
	}
	if len(prof.Extensions) > 0 && !c.setFlags["ext"] {
		c.Ext = strings.Join(prof.Extensions, ",")
	}
	if prof.ApproxFiles > 0 && !c.setFlags["approx-files"] {
		c.ApproxFiles = prof.ApproxFiles
	}
	if prof.MinSizeKB > 0 && !c.setFlags["min-size-kb"] {
		c.MinSizeKB = prof.MinSizeKB
	}
	if prof.MaxSizeKB > 0 && !c.setFlags["max-size-kb"] {
		c.MaxSizeKB = prof.MaxSizeKB
	}
	if prof.Seed != nil && !c.setFlags["seed"] {
		c.Seed = *prof.Seed
	}
	if prof.DryRun != nil && !c.setFlags["dry-run"] {
		c.DryRun = *prof.DryRun
	}
}

// TargetBytes converts the configured MB target into bytes.
func (c *Config) TargetBytes() int64 {
	return c.TargetMB * 1024 * 1024
}

// EnabledTypes resolves the extension list: the -ext flag (or profile
// extensions) filtered against the supported set, or every supported type
// when nothing was requested. Unknown entries are returned for the caller to
// warn about; an empty result after filtering is an error.
func (c *Config) EnabledTypes() ([]sizing.FileType, []string, error) {
	if strings.TrimSpace(c.Ext) == "" {
		enabled := make([]sizing.FileType, len(sizing.DefaultFileTypes))
		copy(enabled, sizing.DefaultFileTypes)
		return enabled, nil, nil
	}

	known := make(map[sizing.FileType]bool, len(sizing.DefaultFileTypes))
	for _, ext := range sizing.DefaultFileTypes {
		known[ext] = true
	}
	if c.ActiveProfile != nil {
		// A profile that defines a range for an extension makes it valid.
		for ext := range c.ActiveProfile.Ranges {
			known[sizing.FileType(strings.ToLower(ext))] = true
		}
	}

	var enabled []sizing.FileType
	var unknown []string
	for _, raw := range strings.Split(c.Ext, ",") {
		ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), ".")
		if ext == "" {
			continue
		}
		if known[sizing.FileType(ext)] {
			enabled = append(enabled, sizing.FileType(ext))
		} else {
			unknown = append(unknown, ext)
		}
	}

	if len(enabled) == 0 {
		return nil, unknown, fmt.Errorf("after filtering, no valid extensions remain")
	}
	return enabled, unknown, nil
}

// DefaultRanges merges profile-defined per-type windows over the built-in
// defaults. The result feeds sizing.BuildTable, which enforces the min<=max
// invariant after the global overrides.
func (c *Config) DefaultRanges() map[sizing.FileType]sizing.SizeRange {
	if c.ActiveProfile == nil || len(c.ActiveProfile.Ranges) == 0 {
		return sizing.DefaultSizeRanges
	}

	merged := make(map[sizing.FileType]sizing.SizeRange, len(sizing.DefaultSizeRanges))
	for ext, r := range sizing.DefaultSizeRanges {
		merged[ext] = r
	}
	for ext, tr := range c.ActiveProfile.Ranges {
		key := sizing.FileType(strings.ToLower(ext))
		r, ok := merged[key]
		if !ok {
			r = sizing.FallbackRange()
		}
		if tr.MinKB > 0 {
			r.Min = tr.MinKB * 1024
		}
		if tr.MaxKB > 0 {
			r.Max = tr.MaxKB * 1024
		}
		merged[key] = r
	}
	return merged
}

func (c *Config) PrintConfig(appName string) {
	fmt.Printf("🔧 %s Configuration\n", appName)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📁 Output Directory: %s\n", c.OutDir)
	fmt.Printf("🎯 Target Size: %d MB (%d bytes)\n", c.TargetMB, c.TargetBytes())
	if c.Ext != "" {
		fmt.Printf("📄 Extensions: %s\n", c.Ext)
	} else {
		fmt.Printf("📄 Extensions: all supported\n")
	}
	if c.ApproxFiles > 0 {
		fmt.Printf("🔢 Approx. Files: %d\n", c.ApproxFiles)
	}
	if c.MinSizeKB > 0 {
		fmt.Printf("📏 Min Size: %d KB\n", c.MinSizeKB)
	}
	if c.MaxSizeKB > 0 {
		fmt.Printf("📏 Max Size: %d KB\n", c.MaxSizeKB)
	}
	if c.Seed != 0 {
		fmt.Printf("🎲 Random Seed: %d\n", c.Seed)
	}
	if c.ProfileName != "" {
		fmt.Printf("📝 Profile: %s (%s)\n", c.ProfileName, c.ProfilePath)
	} else if c.ProfilePath != "" {
		fmt.Printf("📝 Profile: %s\n", c.ProfilePath)
	}
	fmt.Printf("📊 Buffer Size: %d KB\n", c.BufferSize/1024)
	if c.DryRun {
		fmt.Println("🧪 Dry run: no files will actually be created")
	}
	if c.Benchmark {
		fmt.Println("📊 Benchmark mode: compressibility measurement enabled")
	}
	fmt.Printf("💻 Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// Helpers for parsing ldflag-provided strings
func parseBoolOr(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	case "0", "f", "false", "n", "no", "off":
		return false
	default:
		return fallback
	}
}

func parseIntOr(val string, fallback int) int {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := 1
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	n := 0
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int(ch-'0')
	}
	return sign * n
}

func parseInt64Or(val string, fallback int64) int64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := int64(1)
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	var n int64
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int64(ch-'0')
	}
	return sign * n
}

func orString(val string, fallback string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	return s
}
