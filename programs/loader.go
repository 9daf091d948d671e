// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package programs locates compiled program binaries and wraps them in
// executable account fixtures.
package programs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/account"
	"github.com/solana-toolkit/accountgen/rent"
)

// ErrNotFound is returned when no search directory contains the requested
// program file.
var ErrNotFound = errors.New("program file not found")

// DefaultProgramDirs returns the directories searched for program files, in
// order: the BPF_OUT_DIR or SBF_OUT_DIR override, the conventional build
// output and fixture directories, then the current directory.
func DefaultProgramDirs() []string {
	var dirs []string
	if dir := os.Getenv("BPF_OUT_DIR"); dir != "" {
		dirs = append(dirs, dir)
	} else if dir := os.Getenv("SBF_OUT_DIR"); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, filepath.Join("target", "deploy"))
	dirs = append(dirs, filepath.Join("tests", "fixtures"))
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	return dirs
}

// FindProgramFile returns the path of the first search directory containing
// filename, or [ErrNotFound].
func FindProgramFile(filename string) (string, error) {
	for _, dir := range DefaultProgramDirs() {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
}

// CreateProgramAccount loads filename from the search directories and
// builds an executable account owned by programOwner, funded at the
// rent-exempt minimum for the binary's size.
func CreateProgramAccount(filename string, programOwner solana.PublicKey) (account.Account, error) {
	path, err := FindProgramFile(filename)
	if err != nil {
		return account.Account{}, err
	}

	programData, err := os.ReadFile(path)
	if err != nil {
		return account.Account{}, err
	}

	return account.NewAccountBuilder().
		Balance(rent.MinimumBalance(len(programData))).
		Owner(programOwner).
		DataRaw(programData).
		Executable(true).
		TryBuild()
}
