// diffenum is a code generation tool for sealed-interface unions whose
// variants share common fields.
//
// A union is declared in a definition file, excluded from the build, as an
// interface plus one struct per variant:
//
//	//go:build ignore
//
//	//go:generate go run github.com/rhysd/diff-enum/cmd/diffenum common-fields --shared "User string; Stars uint32"
//	type RemoteRepo interface {
//		isRemoteRepo()
//	}
//
//	type GitHub struct {
//		Language     string
//		PullRequests uint32
//	}
//
//	type GitLab struct {
//		MergeRequests uint32
//	}
//
// The tool re-emits the union with the shared fields appended to every
// variant, marker method stubs for each variant, and one accessor function
// per shared field that dispatches over all variants.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rhysd/diff-enum/internal/codegen"
	"github.com/rhysd/diff-enum/internal/codegen/commonfields"
)

var (
	typeName   string
	sharedSpec string
	sharedFile string
	outputDir  string
	pkgName    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "diffenum",
	Short:         "Define union variants by their differences",
	Long:          "diffenum generates Go code for sealed-interface unions whose variants share common fields declared once.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var commonFieldsCmd = &cobra.Command{
	Use:   "common-fields",
	Short: "Inject shared fields into every union variant and generate field accessors",
	Long: `Inject the shared field declarations into every variant of the union and
generate one accessor function per shared field.

The shared field list uses struct field grammar: "Name Type" declarations
separated by semicolons or newlines, each optionally carrying a struct tag
and comments. At least one field is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		logger.Debug("running common-fields",
			zap.String("type", cfg.TypeName),
			zap.String("source", filepath.Join(cfg.SourceDir, cfg.SourceFile)),
			zap.String("output", cfg.OutputDir))
		subtool := &commonfields.Subtool{}
		return subtool.Run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	commonFieldsCmd.Flags().StringVar(&typeName, "type", "", "Name of the union interface type (inferred if the directive is above the type)")
	commonFieldsCmd.Flags().StringVar(&sharedSpec, "shared", "", "Shared field list, e.g. \"User string; Stars uint32\"")
	commonFieldsCmd.Flags().StringVar(&sharedFile, "shared-file", "", "File whose contents are the shared field list")
	commonFieldsCmd.Flags().StringVar(&outputDir, "output", "", "Output directory for the generated file (default: same as source)")
	commonFieldsCmd.Flags().StringVar(&pkgName, "package", "", "Package name for the generated file (default: same as source)")
	rootCmd.AddCommand(commonFieldsCmd)
}

func buildConfig() (codegen.GeneratorConfig, error) {
	var cfg codegen.GeneratorConfig
	sourceFile := os.Getenv("GOFILE")
	if sourceFile == "" {
		return cfg, fmt.Errorf("GOFILE environment variable not set (are you running via go generate?)")
	}
	sourceDir, err := os.Getwd()
	if err != nil {
		return cfg, fmt.Errorf("getting working directory: %w", err)
	}
	shared, err := resolveSharedSpec()
	if err != nil {
		return cfg, err
	}
	if typeName == "" {
		typeName, err = detectTypeName(sourceDir, sourceFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hint: use --type=TypeName or place the directive directly above the union interface")
			return cfg, err
		}
	}
	if outputDir == "" {
		outputDir = sourceDir
	}
	sourcePkg := os.Getenv("GOPACKAGE")
	if pkgName == "" {
		pkgName = sourcePkg
	}
	if pkgName == "" {
		return cfg, fmt.Errorf("package name not set (use --package outside of go generate)")
	}
	return codegen.GeneratorConfig{
		TypeName:   typeName,
		SourceFile: sourceFile,
		SourceDir:  sourceDir,
		SourcePkg:  sourcePkg,
		OutputDir:  outputDir,
		OutputPkg:  pkgName,
		SharedSpec: shared,
	}, nil
}

func resolveSharedSpec() (string, error) {
	if sharedSpec != "" && sharedFile != "" {
		return "", fmt.Errorf("--shared and --shared-file are mutually exclusive")
	}
	if sharedFile != "" {
		contents, err := os.ReadFile(sharedFile)
		if err != nil {
			return "", fmt.Errorf("reading shared field list: %w", err)
		}
		return string(contents), nil
	}
	return sharedSpec, nil
}

func detectTypeName(sourceDir, sourceFile string) (string, error) {
	typeName, err := codegen.FindUnionAfterGenerateDirective(sourceDir, sourceFile, "diffenum common-fields")
	if err == nil {
		return typeName, nil
	}
	goLine := os.Getenv("GOLINE")
	if goLine != "" {
		lineNum, lineErr := strconv.Atoi(goLine)
		if lineErr == nil {
			return codegen.FindUnionAfterLine(filepath.Join(sourceDir, sourceFile), lineNum)
		}
	}
	return "", err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if strings.Contains(err.Error(), "unknown command") {
			_ = rootCmd.Usage()
		}
		os.Exit(1)
	}
}
