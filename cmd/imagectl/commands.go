package main

import (
	"fmt"

	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/operations"
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest filename...",
		Short: "Print the SHA-256 of stored images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLocal(cmd)
			if err != nil {
				return err
			}
			for _, name := range args {
				meta, err := l.images.Analyze(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", meta.SHA256, name)
			}
			return nil
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify filename...",
		Short: "Print the image type implied by each filename",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", images.Classify(name), name)
			}
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze filename...",
		Short: "Print full metadata for stored images as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLocal(cmd)
			if err != nil {
				return err
			}
			metas := make([]*images.ImageMetadata, 0, len(args))
			for _, name := range args {
				meta, err := l.images.Analyze(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				metas = append(metas, meta)
			}
			if len(metas) == 1 {
				return printJSON(cmd.OutOrStdout(), metas[0])
			}
			return printJSON(cmd.OutOrStdout(), metas)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate filename...",
		Short: "Check that stored images carry the header their extension implies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLocal(cmd)
			if err != nil {
				return err
			}

			var invalid []string
			for _, name := range args {
				res, err := l.operations.Dispatch(cmd.Context(), operations.Request{
					Operation: string(operations.OpValidate),
					Filename:  name,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if res.Valid != nil && !*res.Valid {
					invalid = append(invalid, name)
					fmt.Fprintf(cmd.OutOrStdout(), "INVALID\t%s\t%s\n", name, res.Reason)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", name)
			}

			if len(invalid) > 0 {
				return fmt.Errorf("%d of %d images failed validation", len(invalid), len(args))
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count entries in the images and processed roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLocal(cmd)
			if err != nil {
				return err
			}
			stats, err := l.images.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
