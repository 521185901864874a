package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	conanv2adapter "github.com/pkgrove/revscan/pkg/adapters/conanv2"
	githubadapter "github.com/pkgrove/revscan/pkg/adapters/github"
	"github.com/pkgrove/revscan/pkg/config"
	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/logging"
	"github.com/pkgrove/revscan/pkg/outdated"
	"github.com/pkgrove/revscan/pkg/output"
	"github.com/pkgrove/revscan/pkg/remotes"
)

var (
	configPath   string
	graphPath    string
	remoteNames  []string
	noRemote     bool
	recipeRevs   bool
	packageRevs  bool
	outputFormat string
	debug        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "revscan",
		Short:        "Revscan reports outdated dependencies in resolved package graphs",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/revscan.yaml", "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	outdatedCmd := &cobra.Command{
		Use:   "outdated",
		Short: "List graph dependencies with newer versions or revisions in the remotes",
		RunE:  runOutdated,
	}
	outdatedCmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Path to the resolved graph JSON export (required)")
	outdatedCmd.Flags().StringSliceVarP(&remoteNames, "remote", "r", nil, "Restrict the check to the named remotes")
	outdatedCmd.Flags().BoolVar(&noRemote, "no-remote", false, "Do not query any remote")
	outdatedCmd.Flags().BoolVar(&recipeRevs, "recipe-revisions", false, "Check recipe revisions instead of versions")
	outdatedCmd.Flags().BoolVar(&packageRevs, "package-revisions", false, "Check package revisions instead of versions")
	outdatedCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	_ = outdatedCmd.MarkFlagRequired("graph")
	outdatedCmd.MarkFlagsMutuallyExclusive("recipe-revisions", "package-revisions")
	outdatedCmd.MarkFlagsMutuallyExclusive("remote", "no-remote")
	rootCmd.AddCommand(outdatedCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOutdated(cmd *cobra.Command, _ []string) error {
	logging.Init(debug)
	defer logging.Sync()
	ctx := cmd.Context()

	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format %q", outputFormat)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var rems []remotes.Remote
	if !noRemote {
		rems, err = remotes.Select(cfg.Remotes, remoteNames)
		if err != nil {
			return err
		}
	}

	g, err := graph.Load(graphPath)
	if err != nil {
		return err
	}
	// Revision analysis is only meaningful on a cleanly resolved graph.
	if err := g.Err(); err != nil {
		logging.C(ctx).Error("Graph cannot be analyzed", zap.Error(err))
		return err
	}

	dispatcher := remotes.NewDispatcher()
	dispatcher.Register(remotes.KindConan, conanv2adapter.New())
	dispatcher.Register(remotes.KindGitHub, githubadapter.New(os.Getenv("GITHUB_TOKEN")))

	color := outputFormat == "text" && output.IsColorEnabled()

	switch {
	case recipeRevs, packageRevs:
		checker := outdated.NewChecker(dispatcher)
		var report *outdated.Report
		if recipeRevs {
			report = checker.CheckRecipeRevisions(ctx, g.Dependencies(), rems)
		} else {
			report = checker.CheckPackageRevisions(ctx, g.Dependencies(), rems)
		}
		if outputFormat == "json" {
			return output.JSON(os.Stdout, report)
		}
		output.Text(os.Stdout, report, color)
	default:
		result := outdated.NewVersionChecker(dispatcher).Check(ctx, g, rems)
		if outputFormat == "json" {
			return output.JSON(os.Stdout, result)
		}
		output.VersionsText(os.Stdout, result, color)
	}
	return nil
}
