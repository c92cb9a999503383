package cli

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/protocol"
	"github.com/lehoon/ambry/pkg/util/mlog"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "decode a serialized partition response unit",
	Long:  "decode a serialized partition response unit from a file and print it",
	Run:   inspectRun,
}

var (
	inspectConfig    string
	inspectInput     string
	inspectPartition []int
	inspectVersion   string
)

func inspectRun(cmd *cobra.Command, args []string) {
	cfg, err := loadWireConfig(inspectConfig)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := mlog.New(cfg.LogLocation)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	if inspectVersion == "" {
		inspectVersion = cfg.Version
	}
	version, err := parseVersion(inspectVersion)
	if err != nil {
		logger.Fatal(err)
	}

	raw, err := os.ReadFile(inspectInput)
	if err != nil {
		logger.Fatal(err)
	}

	ids := make([]int64, 0, len(inspectPartition))
	for _, id := range inspectPartition {
		ids = append(ids, int64(id))
	}
	m := cmap.New(ids...)
	res, err := protocol.ReadPartitionResponseInfo(bytes.NewReader(raw), m, version)
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Println(res.String())
	for _, info := range res.MessageInfoList() {
		fmt.Println("  " + info.String())
	}
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectConfig, "config", "c", "config.json", "config file path")
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "response.bin", "input file path")
	inspectCmd.Flags().IntSliceVarP(&inspectPartition, "partition", "p", []int{1}, "partition ids in the cluster map")
	inspectCmd.Flags().StringVarP(&inspectVersion, "version", "v", "", "get response version")
}
