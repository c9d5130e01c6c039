package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hooksig/hooksig/pkg/logger"
	"github.com/hooksig/hooksig/pkg/signature"
	"github.com/hooksig/hooksig/pkg/util"
)

func main() {
	app := &cli.App{
		Name:  "hooksig",
		Usage: "Verify Ed25519 webhook signatures",
		Description: `Checks that a hex-encoded Ed25519 signature covers the concatenation of a
timestamp string and a request body, under a given public key.

The public key may be supplied as a hex string or as a JWK document. The body
may be given inline, as a file, or as hex for binary payloads.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "verify",
				Usage: "Check a signature over timestamp||body",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "public-key",
						Usage: "Hex-encoded Ed25519 public key (32 bytes)",
					},
					&cli.StringFlag{
						Name:  "public-key-jwk",
						Usage: "Path to a JWK file holding the public key",
					},
					&cli.StringFlag{
						Name:     "signature",
						Usage:    "Hex-encoded signature",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "timestamp",
						Usage:    "Timestamp string the signer prepended to the body",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "body",
						Usage: "Request body as a UTF-8 string",
					},
					&cli.StringFlag{
						Name:  "body-file",
						Usage: "Path to a file containing the raw request body",
					},
					&cli.StringFlag{
						Name:  "body-hex",
						Usage: "Request body as hex, for binary payloads",
					},
				},
				Action: verifyCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func verifyCommand(c *cli.Context) error {
	zapLogger, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("debug")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer zapLogger.Sync()

	key, err := resolveKey(c)
	if err != nil {
		return err
	}
	body, err := resolveBody(c)
	if err != nil {
		return err
	}

	verifier := signature.NewVerifier(nil)
	if err := verifier.Check(body, c.String("signature"), c.String("timestamp"), key); err != nil {
		zapLogger.Debug("verification failed", zap.Error(err))
		fmt.Println("invalid")
		return cli.Exit("", 1)
	}

	fmt.Println("valid")
	return nil
}

func resolveKey(c *cli.Context) (signature.PublicKey, error) {
	if hexKey := c.String("public-key"); hexKey != "" {
		return signature.RawHexKey(hexKey), nil
	}
	if path := c.String("public-key-jwk"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return signature.PublicKey{}, fmt.Errorf("failed to read JWK file: %w", err)
		}
		return signature.PublicKeyFromJWK(data)
	}
	return signature.PublicKey{}, fmt.Errorf("one of --public-key or --public-key-jwk is required")
}

func resolveBody(c *cli.Context) (any, error) {
	if c.String("body") != "" {
		return c.String("body"), nil
	}
	if path := c.String("body-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		return data, nil
	}
	if bodyHex := c.String("body-hex"); bodyHex != "" {
		data, err := util.ToBytes(bodyHex, util.FormatHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --body-hex: %w", err)
		}
		return data, nil
	}
	// No body flag means an empty body; the signed message is just the
	// timestamp bytes.
	return nil, nil
}
