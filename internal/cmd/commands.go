package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/document"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/file"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/health"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/integration"
	versioncmd "github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/version"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/webhook"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/workspace"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)
	Commands = commandFactories(b)
}

func commandFactories(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"workspace": func() (cli.Command, error) {
			return &workspace.Command{Command: b}, nil
		},
		"workspace list": func() (cli.Command, error) {
			return &workspace.ListCommand{Command: b}, nil
		},
		"workspace get": func() (cli.Command, error) {
			return &workspace.GetCommand{Command: b}, nil
		},
		"workspace create": func() (cli.Command, error) {
			return &workspace.CreateCommand{Command: b}, nil
		},
		"workspace update": func() (cli.Command, error) {
			return &workspace.UpdateCommand{Command: b}, nil
		},
		"workspace delete": func() (cli.Command, error) {
			return &workspace.DeleteCommand{Command: b}, nil
		},

		"document": func() (cli.Command, error) {
			return &document.Command{Command: b}, nil
		},
		"document get": func() (cli.Command, error) {
			return &document.GetCommand{Command: b}, nil
		},
		"document url": func() (cli.Command, error) {
			return &document.URLCommand{Command: b}, nil
		},
		"document upload": func() (cli.Command, error) {
			return &document.UploadCommand{Command: b}, nil
		},
		"document download": func() (cli.Command, error) {
			return &document.DownloadCommand{Command: b}, nil
		},
		"document versions": func() (cli.Command, error) {
			return &document.VersionsCommand{Command: b}, nil
		},
		"document restore": func() (cli.Command, error) {
			return &document.RestoreCommand{Command: b}, nil
		},

		"file": func() (cli.Command, error) {
			return &file.Command{Command: b}, nil
		},
		"file list": func() (cli.Command, error) {
			return &file.ListCommand{Command: b}, nil
		},
		"file upload": func() (cli.Command, error) {
			return &file.UploadCommand{Command: b}, nil
		},
		"file download": func() (cli.Command, error) {
			return &file.DownloadCommand{Command: b}, nil
		},
		"file delete": func() (cli.Command, error) {
			return &file.DeleteCommand{Command: b}, nil
		},
		"file archive": func() (cli.Command, error) {
			return &file.ArchiveCommand{Command: b}, nil
		},

		"integration": func() (cli.Command, error) {
			return &integration.Command{Command: b}, nil
		},
		"integration list": func() (cli.Command, error) {
			return &integration.ListCommand{Command: b}, nil
		},
		"integration get": func() (cli.Command, error) {
			return &integration.GetCommand{Command: b}, nil
		},
		"integration create": func() (cli.Command, error) {
			return &integration.CreateCommand{Command: b}, nil
		},
		"integration sync": func() (cli.Command, error) {
			return &integration.SyncCommand{Command: b}, nil
		},
		"integration delete": func() (cli.Command, error) {
			return &integration.DeleteCommand{Command: b}, nil
		},

		"webhook": func() (cli.Command, error) {
			return &webhook.Command{Command: b}, nil
		},
		"webhook list": func() (cli.Command, error) {
			return &webhook.ListCommand{Command: b}, nil
		},
		"webhook create": func() (cli.Command, error) {
			return &webhook.CreateCommand{Command: b}, nil
		},
		"webhook test": func() (cli.Command, error) {
			return &webhook.TestCommand{Command: b}, nil
		},
		"webhook delete": func() (cli.Command, error) {
			return &webhook.DeleteCommand{Command: b}, nil
		},

		"health": func() (cli.Command, error) {
			return &health.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
