/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zkage-rest serves zero-knowledge age verification over REST.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/cmd/zkage-rest/startcmd"
)

var logger = log.New("zkage-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "zkage-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("ZKAGE_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run zkage-rest", log.WithError(err))
	}
}
