// Command imagectl inspects a diskprobe data directory without the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/onkernel/diskprobe/lib/digest"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/operations"
	"github.com/onkernel/diskprobe/lib/paths"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// local is the set of components a command runs against.
type local struct {
	images     images.Manager
	operations operations.Manager
}

func openLocal(cmd *cobra.Command) (*local, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	bufSize, _ := cmd.Flags().GetString("buffer-size")

	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(bufSize)); err != nil {
		return nil, fmt.Errorf("invalid --buffer-size %q: %w", bufSize, err)
	}

	store := images.NewStore(paths.New(dataDir))
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	imageMgr, err := images.NewManager(store, digest.NewEngine(size, nil, log), nil)
	if err != nil {
		return nil, err
	}
	opsMgr, err := operations.NewManager(store, nil, nil)
	if err != nil {
		return nil, err
	}
	return &local{images: imageMgr, operations: opsMgr}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imagectl",
		Short: "Inspect disk images in a diskprobe data directory",
		Long: strings.TrimSpace(`
Runs the same analysis the API server performs, directly against the
images/ and processed/ roots of a data directory.
`),
		SilenceUsage: true,
	}

	defaultDir := os.Getenv("DATA_DIR")
	if defaultDir == "" {
		defaultDir = "./storage"
	}
	root.PersistentFlags().StringP("data-dir", "d", defaultDir, "Data directory holding images/ and processed/")
	root.PersistentFlags().String("buffer-size", "1MB", "Read buffer size for digesting")

	root.AddCommand(
		newDigestCmd(),
		newClassifyCmd(),
		newAnalyzeCmd(),
		newValidateCmd(),
		newStatsCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
