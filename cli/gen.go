package cli

import (
	"bytes"
	"log"
	"os"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/commons"
	"github.com/lehoon/ambry/pkg/protocol"
	"github.com/lehoon/ambry/pkg/store"
	"github.com/lehoon/ambry/pkg/util/mlog"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "generate a serialized partition response unit",
	Long:  "generate a serialized partition response unit and write it to a file",
	Run:   genRun,
}

var (
	genConfig    string
	genOutput    string
	genPartition int64
	genCount     int
	genVersion   string
	genError     int
)

func genRun(cmd *cobra.Command, args []string) {
	cfg, err := loadWireConfig(genConfig)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := mlog.New(cfg.LogLocation)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	if genVersion == "" {
		genVersion = cfg.Version
	}
	version, err := parseVersion(genVersion)
	if err != nil {
		logger.Fatal(err)
	}

	m := cmap.New(genPartition)
	partition := m.GetPartition(genPartition)

	var res *protocol.PartitionResponseInfo
	if genError != 0 {
		code, err := commons.ErrorCodeFromOrdinal(int16(genError))
		if err != nil {
			logger.Fatal(err)
		}
		res, err = protocol.NewErrorResponse(partition, code, version)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		infos := make([]store.MessageInfo, 0, genCount)
		for i := 0; i < genCount; i++ {
			infos = append(infos, store.MessageInfo{
				ID:        store.NewBlobID(partition),
				Size:      int64(1024 * (i + 1)),
				ExpiresAt: store.NoExpiration,
			})
		}
		res, err = protocol.NewSuccessResponse(partition, infos, version)
		if err != nil {
			logger.Fatal(err)
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, res.SizeInBytes()))
	if err := res.WriteTo(buf); err != nil {
		logger.Fatal(err)
	}
	if err := os.WriteFile(genOutput, buf.Bytes(), 0644); err != nil {
		logger.Fatal(err)
	}

	logger.WithField("size", res.SizeInBytes()).Infof("wrote %s to %s", res.String(), genOutput)
}

func init() {
	genCmd.Flags().StringVarP(&genConfig, "config", "c", "config.json", "config file path")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "response.bin", "output file path")
	genCmd.Flags().Int64VarP(&genPartition, "partition", "p", 1, "partition id")
	genCmd.Flags().IntVarP(&genCount, "count", "n", 3, "number of message infos")
	genCmd.Flags().StringVarP(&genVersion, "version", "v", "", "get response version")
	genCmd.Flags().IntVarP(&genError, "error", "e", 0, "server error code ordinal")
}
