package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahmednasr/askme/internal/client"
	"github.com/ahmednasr/askme/internal/render"
	"github.com/ahmednasr/askme/internal/reveal"
)

var (
	askFormat     string
	askTypewriter bool
)

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question is required")
	}

	conv, err := render.New(askFormat, 80)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	answer, err := client.New(serverURL, timeout).Ask(ctx, question)
	if err != nil {
		logger.Error("ask failed", zap.Error(err))
		return err
	}

	display, err := conv.Convert(answer)
	if err != nil {
		logger.Warn("convert answer", zap.Error(err))
		display = answer
	}

	out := cmd.OutOrStdout()
	if !askTypewriter {
		_, err = fmt.Fprintln(out, display)
		return err
	}
	if err := typewrite(ctx, out, display); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

// typewrite reveals text on w, writing only what each new prefix adds.
func typewrite(ctx context.Context, w io.Writer, text string) error {
	written := 0
	return reveal.Play(ctx, text, reveal.DefaultInterval, func(prefix string) {
		if len(prefix) > written {
			_, _ = io.WriteString(w, prefix[written:])
			written = len(prefix)
		}
	})
}
