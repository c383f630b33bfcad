// Package cmd provides the aiconic CLI.
//
// Commands:
//   - serve: HTTP API server with SSE streaming
//   - migrate: apply database migrations and exit
//   - version: show build information
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aiconic",
	Short: "AIconic - AI 图标生成服务",
	Long: `AIconic 是一个基于 Genkit 的 AI 图标生成服务。
它通过工具调用编排分析需求、生成多风格 SVG 图标，
并以 SSE 实时推送生成进度。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Called from main.
func Execute() error {
	return rootCmd.Execute()
}
