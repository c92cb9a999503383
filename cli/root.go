package cli

import (
	"strconv"

	"github.com/lehoon/ambry/pkg/protocol"
	"github.com/lehoon/ambry/pkg/util/config"
	"github.com/spf13/cobra"
)

// rootCmd is a root of all commands.
var rootCmd = &cobra.Command{
	Use:   "ambry [command] [flags]",
	Short: "ambry wire protocol command-line interface",
	Long:  `ambry wire protocol command-line interface`,
	Run:   rootCmdRun,
}

func rootCmdRun(cmd *cobra.Command, args []string) {
	cmd.Help()
}

// Run executes the root command.
func Run() error {
	return rootCmd.Execute()
}

// loadWireConfig reads the optional config file and fills the wire
// command defaults.
func loadWireConfig(file string) (config.Wire, error) {
	cfg := config.Wire{}

	if err := config.Load(file); err != nil {
		return cfg, err
	}

	cfg.Version = config.Get("wire.version", "2")
	cfg.LogLocation = config.Get("wire.log", "stderr")
	return cfg, nil
}

// parseVersion converts a version string to a get response version.
func parseVersion(s string) (protocol.GetResponseVersion, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return protocol.GetResponseVersion(v), nil
}

func init() {
	// Add commands.
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(inspectCmd)
}
