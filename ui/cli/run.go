// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/i18n"
	"github.com/toeirei/caesarcipher/internal/logging"
)

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeCrack
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// selectMode validates the operation flags. Decode takes precedence over
// crack, and crack over encode.
func (o *rootOptions) selectMode(offsetSet bool) (mode, error) {
	if o.decode && !offsetSet {
		return 0, newUserError("cli.missing_offset", cipher.ErrMissingOffset)
	}
	if o.encode && o.decode {
		return 0, newUserError("cli.mutual_exclusion", cipher.ErrMutualExclusion)
	}
	switch {
	case o.decode:
		return modeDecode, nil
	case o.crack:
		return modeCrack, nil
	case o.encode:
		return modeEncode, nil
	}
	return 0, newUserError("cli.no_selection", cipher.ErrNoSelection)
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	offsetSet := cmd.Flags().Changed("offset")
	m, err := o.selectMode(offsetSet)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd, args, o.file)
	if err != nil {
		return err
	}
	message, err = decodeInput(message, o.settings.InputFormat)
	if err != nil {
		return err
	}

	c, err := cipher.New(cipherOptions(o.settings)...)
	if err != nil {
		return err
	}

	offset := cipher.None()
	if offsetSet {
		offset = cipher.Some(o.offset)
	}

	switch m {
	case modeDecode:
		res, err := c.Decode(message, offset)
		if err != nil {
			return err
		}
		return o.emit(cmd, "cli.decoded", res.Text)

	case modeCrack:
		if o.report {
			if err := renderReport(cmd.OutOrStdout(), c.Candidates(message)); err != nil {
				return err
			}
		}
		res := c.Crack(message)
		if message != "" {
			logging.Infof("%s", i18n.T("cli.cracked_offset", res.Offset))
		}
		return o.emit(cmd, "cli.cracked", res.Text)

	default:
		res, err := c.Encode(message, offset)
		if err != nil {
			return err
		}
		if res.Random {
			logging.Infof("%s", i18n.T("cli.random_offset", res.Offset))
		}
		return o.emit(cmd, "cli.encoded", res.Text)
	}
}

// emit formats text and sends it to the output file or standard output, then
// copies it to the clipboard when asked.
func (o *rootOptions) emit(cmd *cobra.Command, labelID, text string) error {
	formatted, err := formatOutput(text, o.settings.Format)
	if err != nil {
		return err
	}

	if o.output != "" {
		if err := os.WriteFile(o.output, []byte(formatted+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", o.output, err)
		}
		logging.Infof("%s", i18n.T("cli.wrote_output", o.output))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T(labelID, formatted))
	}

	if o.copy {
		if err := writeClipboard(formatted); err != nil {
			logging.Warnf("%s", i18n.T("cli.copy_failed", err))
		} else {
			logging.Infof("%s", i18n.T("cli.copied"))
		}
	}
	return nil
}
