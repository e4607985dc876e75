package cmd

import (
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "fifths",
	Short: "Circle of fifths explorer",
	Long:  `Explore keys on the circle of fifths: scale degrees, relatives, neighborhoods and Coltrane cycles.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is fine, the real environment still applies
		_ = godotenv.Load()

		level := logLevel
		if level == "" {
			level = constants.GetLogLevel()
		}
		return logger.InitLogger(logger.Config{
			Level:      level,
			OutputPath: constants.GetLogPath(),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (defaults to LOG_LEVEL)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
