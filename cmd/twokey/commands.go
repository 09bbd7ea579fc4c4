package main

import (
	"fmt"
	"io"

	"github.com/mwildt/twokey/codecs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const formatTable = "table"

type cli struct {
	options loadOptions
	verbose bool
	logger  *zap.SugaredLogger
}

func NewCLI() *cobra.Command {
	return newCLI(nil)
}

func newCLI(logger *zap.SugaredLogger) *cobra.Command {
	app := &cli{logger: logger}

	rootCmd := &cobra.Command{
		Use:           "twokey",
		Short:         "Query (key1, key2) -> value records",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.logger != nil {
				return nil
			}
			logger, err := newLogger(app.verbose)
			if err != nil {
				return err
			}
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.options.encoding, "encoding", "e", codecs.JSON, "record encoding of the input file (json, b64json)")
	flags.BoolVar(&app.options.sorted, "sorted", false, "keep keys in ascending order")
	flags.BoolVar(&app.options.strict, "strict", false, "fail on duplicate key pairs instead of skipping them")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		app.newLoadCmd(),
		app.newGetCmd(),
		app.newValuesCmd(),
		app.newEntriesCmd(),
		app.newKeysCmd(),
		app.newDumpCmd(),
	)
	return rootCmd
}

func (app *cli) load(cmd *cobra.Command, filename string) (store, error) {
	return loadFile(filename, app.options, app.logger.Named(cmd.Name()))
}

func (app *cli) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Load a file and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d entries, %d first keys\n", target.Len(), len(target.Keys1()))
			return err
		},
	}
}

func (app *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY1 KEY2",
		Short: "Print the value stored under a key pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			value, found := target.Get(args[1], args[2])
			if !found {
				return fmt.Errorf("no value for (%s, %s)", args[1], args[2])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(value))
			return err
		},
	}
}

func (app *cli) newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values FILE KEY1",
		Short: "Print all values stored under a first key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			for _, value := range target.ValuesFor(args[1]) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(value)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (app *cli) newEntriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries FILE KEY1",
		Short: "List second keys and values of a first key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			entries := target.EntriesFor(args[1])
			keys := make([]string, 0, len(entries))
			for key2 := range entries {
				keys = append(keys, key2)
			}
			slices.Sort(keys)

			var data [][]string
			for _, key2 := range keys {
				data = append(data, []string{key2, string(entries[key2])})
			}
			renderTable(cmd.OutOrStdout(), []string{"KEY2", "VALUE"}, data)
			return nil
		},
	}
}

func (app *cli) newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE",
		Short: "List first keys with their number of entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			keys := target.Keys1()
			slices.Sort(keys)

			var data [][]string
			for _, key1 := range keys {
				data = append(data, []string{key1, fmt.Sprint(len(target.ValuesFor(key1)))})
			}
			renderTable(cmd.OutOrStdout(), []string{"KEY1", "ENTRIES"}, data)
			return nil
		},
	}
}

func (app *cli) newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print all entries in file order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.load(cmd, args[0])
			if err != nil {
				return err
			}
			if format == formatTable {
				var data [][]string
				for entry := range target.All() {
					data = append(data, []string{entry.Key1, entry.Key2, string(entry.Value)})
				}
				renderTable(cmd.OutOrStdout(), []string{"KEY1", "KEY2", "VALUE"}, data)
				return nil
			}

			codec, err := codecs.ByName[record](format)
			if err != nil {
				return err
			}
			for entry := range target.All() {
				if err := codecs.WriteLine(cmd.OutOrStdout(), codec, entry); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json, b64json)")
	return cmd
}

func renderTable(writer io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
