package main

import (
	"fmt"

	"github.com/jordanlanch/calltracker/pkg/jobs"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/spf13/cobra"
)

var checkAppCmd = &cobra.Command{
	Use:   "check-app",
	Short: "Verify the voice application forwards calls to this deployment",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The check only talks to the provider, so no database is opened.
		apps := provisioning.NewService(nil, newProvider(cfg, nil), cfg.TwilioAppSID, cfg.TwilioCountry, log)

		res, err := jobs.NewAppCheck(apps, webhookURL(cfg), log).Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "application: %s\n", res.Application.SID)
		fmt.Fprintf(out, "voice url:   %s\n", res.Application.VoiceURL)
		fmt.Fprintf(out, "expected:    %s\n", res.WebhookURL)

		if !res.Healthy() {
			return fmt.Errorf("voice application is misconfigured, update it at %s",
				twilio.ApplicationConsoleURL(res.Application.SID))
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}
