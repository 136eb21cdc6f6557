package cmd

import (
	"context"
	"log"
	"os"

	"github.com/brightifybd/go-storefront/app/configs"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "Reset the persistent store to the built-in dataset",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := configs.LoadEnv()
					kv := configs.OpenStore(env)
					if err := store.Seed(kv); err != nil {
						return err
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
