// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/levush/hipl-sub001/src/internal/helper/posix"
	"github.com/levush/hipl-sub001/src/internal/hit"
	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
	"github.com/levush/hipl-sub001/src/internal/spki/keymat"
	spkisign "github.com/levush/hipl-sub001/src/internal/spki/sign"
	spkiverify "github.com/levush/hipl-sub001/src/internal/spki/verify"
	"github.com/levush/hipl-sub001/src/logger"
	"github.com/spf13/cobra"
)

// ErrVerificationFailed is returned by the verify command when a
// certificate decodes but does not verify.
var ErrVerificationFailed = errors.New("cli: certificate verification failed")

var (
	issuerArg  string
	subjectArg string
	keyFile    string
	days       int
	outputFile string
)

// Execute runs the root command, handling any errors that occur during
// execution.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:     posix.GetExecutableName(),
		Short:   "HIP SPKI certificate tool",
		Version: version,
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "assemble and sign a certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execBuild(log)
		},
	}
	buildCmd.Flags().StringVar(&issuerArg, "issuer", "", "issuer HIT in colon-hex form")
	buildCmd.Flags().StringVar(&subjectArg, "subject", "", "subject HIT in colon-hex form")
	buildCmd.Flags().StringVarP(&keyFile, "key", "k", "", "PEM private key used for signing")
	buildCmd.Flags().IntVar(&days, "days", 30, "validity window length in days")
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	buildCmd.MarkFlagRequired("issuer")
	buildCmd.MarkFlagRequired("subject")
	buildCmd.MarkFlagRequired("key")

	verifyCmd := &cobra.Command{
		Use:   "verify [INPUT_FILE]",
		Short: "decode and verify a certificate blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execVerify(log, args[0])
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [INPUT_FILE]",
		Short: "decode a certificate blob and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execInspect(log, args[0])
		},
	}

	rootCmd.AddCommand(buildCmd, verifyCmd, inspectCmd)
	rootCmd.SetContext(ctx)
	rootCmd.SilenceUsage = true

	return rootCmd.Execute()
}

// execBuild assembles the signed statement, signs it with the local key,
// and writes the wrapped certificate blob.
func execBuild(log logger.Logger) error {
	issuer, err := hit.Parse(issuerArg)
	if err != nil {
		return fmt.Errorf("invalid issuer: %w", err)
	}
	subject, err := hit.Parse(subjectArg)
	if err != nil {
		return fmt.Errorf("invalid subject: %w", err)
	}

	key, err := spkisign.LoadPrivateKey(keyFile)
	if err != nil {
		return err
	}

	notBefore := time.Now()
	record, err := spkicert.Assemble("", issuer, "", subject, notBefore, notBefore.AddDate(0, 0, days))
	if err != nil {
		return err
	}
	if err := spkisign.Sign(record, key); err != nil {
		return err
	}

	blob := spkisign.Blob(record)
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(blob), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		log.Printf("Certificate written to %s", outputFile)
		return nil
	}

	log.Println(blob)
	return nil
}

// execVerify decodes the certificate blob and checks its signature,
// warning when the validity window has lapsed.
func execVerify(log logger.Logger, inputFile string) error {
	record, err := readRecord(inputFile)
	if err != nil {
		return err
	}

	if err := spkiverify.Verify(record); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if info, err := spkicert.ParseStatement(record.Statement); err == nil && !info.ValidAt(time.Now()) {
		log.Printf("Warning: certificate is outside its validity window (%s to %s)",
			info.NotBefore.Format(spkicert.TimeLayout), info.NotAfter.Format(spkicert.TimeLayout))
	}

	log.Printf("Verification %s", record.Verified)
	return nil
}

// execInspect decodes the certificate blob and prints a field table.
func execInspect(log logger.Logger, inputFile string) error {
	record, err := readRecord(inputFile)
	if err != nil {
		return err
	}

	algorithm := keymat.DetectAlgorithm(record.PublicKey)
	log.Println(spkicert.RenderTable(record, algorithm.String()))
	return nil
}

// readRecord reads a certificate blob from disk and decodes it.
func readRecord(inputFile string) (*spkicert.Record, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return spkicert.Decode(string(data))
}
