// Package nvisy is a typed client for the Nvisy document and workspace API.
//
// # Overview
//
// A Client is built from a validated Config and exposes one method per API
// operation, grouped by resource family:
//
//   - WorkspacesService: workspaces and notification settings
//   - DocumentsService: documents, content and version history
//   - FilesService: workspace files, uploads and batch archives
//   - IntegrationsService: third-party connectors
//   - WebhooksService: event subscriptions
//   - HealthService: availability checks
//
// Documents use offset pagination (models.PaginatedResponse). All other
// listings use cursor pagination (models.CursorPage).
//
// # Usage
//
//	cfg, err := nvisy.NewConfig(os.Getenv("NVISY_API_KEY"),
//	    nvisy.WithTimeout(10*time.Second),
//	    nvisy.WithLogger(hclog.Default()),
//	)
//	if err != nil {
//	    return err
//	}
//	client, err := nvisy.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//	ws, err := client.CreateWorkspace(ctx, models.NewCreateWorkspace("Research"))
//
// # Errors
//
// Every operation returns *Error. Non-2xx responses have Kind KindTransport
// and wrap a *StatusError carrying the status code and body; use IsNotFound
// or StatusCode to inspect them. The client never retries.
//
// # Credentials
//
// The API key is sent as a bearer token on every request. It is masked in
// every printed form of Config and is never logged.
package nvisy
