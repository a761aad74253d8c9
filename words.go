package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/werdle/internal/words"
)

func newWordsCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "words [word...]",
		Short: "Validate a word list and check words against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := words.Load(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d words\n", dict.Len())

			missing := 0
			for _, w := range args {
				if dict.Contains(w) {
					fmt.Fprintf(out, "%s ok\n", words.Normalize(w))
				} else {
					fmt.Fprintf(out, "%s not in dictionary\n", words.Normalize(w))
					missing++
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d words not in dictionary", missing, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "word list file (default: embedded list)")
	return cmd
}
