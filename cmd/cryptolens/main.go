package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cryptolens",
		Short: "Analyze the crypto Twitter network: influence, communities, sentiment, emerging topics",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	root.AddCommand(crawlCmd())
	root.AddCommand(analyzeCmd())
	root.AddCommand(topicsCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(runCmd())

	return root
}

func crawlCmd() *cobra.Command {
	var (
		seed       string
		depth      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the network around a seed account and print the graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(seed, depth, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "seed account username (default: from config)")
	cmd.Flags().IntVar(&depth, "depth", 0, "crawl depth (default: from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func analyzeCmd() *cobra.Command {
	var (
		seed       string
		metric     string
		limit      int
		recommend  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank influencers, detect communities, and score sentiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(seed, metric, limit, recommend, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "seed account username (default: from config)")
	cmd.Flags().StringVar(&metric, "metric", "followers", "influencer ranking metric (followers|engagement|degreeCentrality|betweennessCentrality|closenessCentrality)")
	cmd.Flags().IntVar(&limit, "limit", 10, "max influencers to show")
	cmd.Flags().StringVar(&recommend, "recommend", "", "also recommend connections for this node id")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func topicsCmd() *cobra.Command {
	var (
		limit      int
		hashtag    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Mine tweet windows for association rules and emerging topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopics(limit, hashtag, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "max patterns/rules to show")
	cmd.Flags().StringVar(&hashtag, "hashtag", "", "show the timeline for one hashtag instead")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}

func runCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start daemon with scheduler and HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}
