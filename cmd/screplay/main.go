// Command screplay parses StarCraft: Remastered replay files and prints
// their contents as JSON or as a chat transcript.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "screplay",
		Short: "Decode StarCraft: Remastered replay files",
	}

	defaultCfgPath := filepath.Join("~", ".config", "screplay", "config.yaml")
	root.PersistentFlags().StringVar(&cfgFile, "config", defaultCfgPath, "path to a YAML config file with default flag values")

	root.AddCommand(newParseCmd(), newChatCmd(), newVersionCmd())
	return root
}

func resolveConfigPath() string {
	path := cfgFile
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
