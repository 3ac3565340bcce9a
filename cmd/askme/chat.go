package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ahmednasr/askme/internal/chat"
	"github.com/ahmednasr/askme/internal/client"
	"github.com/ahmednasr/askme/internal/render"
)

func runChat(cmd *cobra.Command, args []string) error {
	m := chat.New(chat.Options{
		Asker: client.New(serverURL, timeout),
		Converter: func(width int) (render.Converter, error) {
			return render.NewTerminal(width, "auto")
		},
		Logger: logger,
	})

	logger.Info("chat started")
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}
