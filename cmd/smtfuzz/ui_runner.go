package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"smtfuzz/internal/driver"
	"smtfuzz/internal/ui"
)

type campaignOutcome struct {
	result *driver.CampaignResult
	err    error
}

func runCampaignWithUI(cmd *cobra.Command, opts driver.CampaignOptions) (*driver.CampaignResult, error) {
	files, err := driver.ListProblemFiles(opts.Dir)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	opts.Events = events
	outcomeCh := make(chan campaignOutcome, 1)

	go func() {
		res, err := driver.RunCampaign(cmd.Context(), opts)
		outcomeCh <- campaignOutcome{result: res, err: err}
	}()

	model := ui.NewProgressModel("fuzzing "+opts.Dir, files, opts.Ops, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
