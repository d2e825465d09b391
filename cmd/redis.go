package cmd

import (
	"context"
	"fmt"
	"time"

	"songshelf/cache"
	"songshelf/config"

	"github.com/spf13/cobra"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Check Redis connectivity",
	Long:  `Connect to the configured Redis instance and run a ping, to verify the song list cache will be available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := cache.Connect(cfg); err != nil {
			return err
		}
		defer cache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := cache.Ping(ctx); err != nil {
			return err
		}

		fmt.Printf("Redis connection OK (%s:%s)\n", cfg.RedisHost, cfg.RedisPort)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
