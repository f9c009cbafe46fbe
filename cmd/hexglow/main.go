package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/hexglow/internal/config"
	"github.com/san-kum/hexglow/internal/hexdump"
	"github.com/san-kum/hexglow/internal/render"
	"github.com/san-kum/hexglow/internal/stats"
	"github.com/san-kum/hexglow/internal/viewer"
)

var (
	themeName   string
	placeholder string
	noColor     bool
	asJSON      bool
	asYAML      bool
	configFile  string
	graphWidth  int
	graphHeight int
)

var errUsage = errors.New("usage")

func main() {
	rootCmd := &cobra.Command{
		Use:           "hexglow <filename>",
		Short:         "colorized hex dump for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: runDump,
	}
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", render.DefaultTheme.Name, "color theme")
	rootCmd.Flags().StringVar(&placeholder, "placeholder", ".", "substitute for non-printable bytes")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "emit the plain dump without colors")

	viewCmd := &cobra.Command{
		Use:   "view <filename>",
		Short: "interactive scrollable hex view",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	statsCmd := &cobra.Command{
		Use:   "stats <filename>",
		Short: "byte distribution report",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "emit the summary as json")
	statsCmd.Flags().IntVar(&graphWidth, "width", 80, "histogram width")
	statsCmd.Flags().IntVar(&graphHeight, "height", 12, "histogram height")

	servicesCmd := &cobra.Command{
		Use:   "services",
		Short: "show the resolved capture configuration",
		Args:  cobra.NoArgs,
		RunE:  runServices,
	}
	servicesCmd.Flags().StringVar(&configFile, "config", "", "services file (yaml)")
	servicesCmd.Flags().BoolVar(&asYAML, "yaml", false, "emit the configuration as yaml")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range render.Themes() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, statsCmd, servicesCmd, themesCmd)

	// Help goes to stderr and exits non-zero, like a usage error.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.UseLine())
		os.Exit(1)
	})

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Usage: %s\n", rootCmd.UseLine())
		} else {
			fmt.Fprintf(os.Stderr, "hexglow: %v\n", err)
		}
		os.Exit(1)
	}
}

func lookupTheme() (render.Theme, error) {
	theme, ok := render.Lookup(themeName)
	if !ok {
		return render.Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", themeName, render.Themes())
	}
	return theme, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	ph := byte(hexdump.DefaultPlaceholder)
	if placeholder != "" {
		ph = placeholder[0]
	}
	dump := hexdump.Dump(data, ph)

	if noColor {
		fmt.Print(dump)
		return nil
	}

	theme, err := lookupTheme()
	if err != nil {
		return err
	}
	return render.New(theme).Print(os.Stdout, dump)
}

func runView(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	theme, err := lookupTheme()
	if err != nil {
		return err
	}

	m := viewer.New(filepath.Base(args[0]), data, theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	s := stats.Collect(data)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("size: %d bytes\n", s.Size)
	fmt.Printf("distinct values: %d\n", s.Distinct)
	fmt.Printf("printable: %d (%.1f%%)\n", s.Printable, percent(s.Printable, s.Size))
	fmt.Printf("entropy: %.3f bits/byte\n", s.Entropy)

	if s.Size > 0 {
		v, n := s.Dominant()
		fmt.Printf("dominant byte: 0x%02x (%d occurrences)\n\n", v, n)
		fmt.Println(s.Histogram(graphWidth, graphHeight))
	}
	return nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

func runServices(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(configFile)
	if err != nil {
		return err
	}

	if asYAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Printf("traffic dir: %s\n", cfg.TrafficDir)
	fmt.Printf("tick length: %v\n", cfg.TickLength)
	fmt.Printf("start date:  %s\n", cfg.StartDate)
	fmt.Printf("mongo:       %s\n\n", cfg.MongoURI())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tIP\tPORT")
	for _, svc := range cfg.Services {
		fmt.Fprintf(w, "%s\t%s\t%d\n", svc.Name, svc.IP, svc.Port)
	}
	return w.Flush()
}
