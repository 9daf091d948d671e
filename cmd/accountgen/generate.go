// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solana-toolkit/accountgen/account"
)

func newGenerateCmd() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mock account",
		RunE:  runGenerate,
	}
	generate.Flags().Uint64P("balance", "b", 0, "Account balance in lamports")
	generate.Flags().StringP("owner", "o", "", "Account owner as a base58 public key")
	generate.Flags().BoolP("executable", "e", false, "Whether the account is executable")
	generate.Flags().StringP("format", "f", "json", "Output format (json or base64)")
	generate.Flags().StringP("data", "d", "", "Account data as a hex string")
	generate.Flags().BoolP("verbose", "v", false, "Log the resolved account to stderr")
	cobra.CheckErr(generate.MarkFlagRequired("owner"))
	return generate
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	balance, err := cmd.Flags().GetUint64("balance")
	if err != nil {
		return err
	}
	ownerStr, err := cmd.Flags().GetString("owner")
	if err != nil {
		return err
	}
	executable, err := cmd.Flags().GetBool("executable")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	dataHex, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	owner, err := solana.PublicKeyFromBase58(ownerStr)
	if err != nil {
		return fmt.Errorf("failed to parse owner: %w", err)
	}

	builder := account.NewAccountBuilder().
		Balance(balance).
		Owner(owner).
		Executable(executable)

	if dataHex != "" {
		data, err := hex.DecodeString(dataHex)
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrInvalidEncoding, err)
		}
		builder = builder.DataRaw(data)
	}

	acct, err := builder.TryBuild()
	if err != nil {
		return err
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
		logger.Info("generated account",
			zap.Uint64("lamports", acct.Lamports),
			zap.Stringer("owner", acct.Owner),
			zap.Bool("executable", acct.Executable),
			zap.Int("dataLen", len(acct.Data)),
			zap.String("format", format),
		)
	}

	out, err := renderAccount(acct, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func renderAccount(acct account.Account, format string) (string, error) {
	switch format {
	case "json":
		pretty, err := json.MarshalIndent(acct, "", "  ")
		if err != nil {
			return "", err
		}
		return string(pretty), nil
	case "base64":
		raw, err := json.Marshal(acct)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
