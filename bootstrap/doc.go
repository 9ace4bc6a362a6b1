// Package bootstrap wires a pandora application together.
//
// New loads configuration, initializes the logger and telemetry, and builds a
// di.Container configured from the loaded settings:
//
//	app, err := bootstrap.New("orders")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.Container.MustBind(di.MustReference(NewRepository)).Share()
//
//	err = app.Run(ctx, func(ctx context.Context, c *di.Container) error {
//	    svc, err := di.Resolve[*Service](c, di.Name("Service"))
//	    if err != nil {
//	        return err
//	    }
//	    return svc.Process(ctx)
//	})
//
// Run cancels the task on SIGINT/SIGTERM and always shuts down afterwards,
// flushing telemetry.
package bootstrap
