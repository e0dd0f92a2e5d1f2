package initialization

import (
	"github.com/cloudnest/cloudnest/internal/config"
	"github.com/cloudnest/cloudnest/internal/controllers"
	"github.com/cloudnest/cloudnest/internal/managers"
	"github.com/cloudnest/cloudnest/internal/realtime"
	"github.com/cloudnest/cloudnest/internal/server"
	"github.com/cloudnest/cloudnest/internal/store"
)

// AppContainer wires the store, managers, and controllers for one
// server process.
type AppContainer struct {
	Config          *config.Config
	Store           *store.Store
	FileManager     *managers.FileManager
	FolderManager   *managers.FolderManager
	SessionManager  *managers.SessionManager
	BillingManager  *managers.BillingManager
	ActivityManager *managers.ActivityManager

	eventSource realtime.Source
}

func NewAppContainer(cfg *config.Config) *AppContainer {
	entityStore := store.NewSeeded()

	fileManager := managers.NewFileManager(managers.FileManagerDependencies{
		Store:        entityStore,
		ShareOrigin:  cfg.ShareOrigin,
		Latency:      cfg.SimulatedLatency(),
		ProgressTick: cfg.ProgressTick(),
		SendDelay:    cfg.SendDelay(),
	})

	folderManager := managers.NewFolderManager(managers.FolderManagerDependencies{
		Store:   entityStore,
		Latency: cfg.SimulatedLatency(),
	})

	sessionManager := managers.NewSessionManager(managers.SessionManagerDependencies{
		Vault:   managers.NewSessionVault(),
		Secret:  cfg.SessionSecret,
		Latency: cfg.SimulatedLatency(),
	})

	billingManager := managers.NewBillingManager(managers.BillingManagerDependencies{
		ProcessingDelay: cfg.CheckoutDelay(),
	})

	container := &AppContainer{
		Config:         cfg,
		Store:          entityStore,
		FileManager:    fileManager,
		FolderManager:  folderManager,
		SessionManager: sessionManager,
		BillingManager: billingManager,
	}

	if cfg.RealtimeEnabled {
		container.eventSource = realtime.NewSimulator(realtime.SimulatorConfig{
			ConnectDelay: cfg.RealtimeConnectDelay(),
			Interval:     cfg.RealtimeInterval(),
		})
	} else {
		// A closed source keeps the activity surface alive but silent.
		container.eventSource = realtime.NewClosedSource()
	}

	container.ActivityManager = managers.NewActivityManager(managers.ActivityManagerDependencies{
		Events: container.eventSource.Events(),
	})

	return container
}

// ServerDependencies assembles the controller set for the HTTP server.
func (c *AppContainer) ServerDependencies() server.HTTPServerDependencies {
	return server.HTTPServerDependencies{
		SessionService: c.SessionManager,
		AuthController: controllers.NewAuthController(controllers.AuthControllerDependencies{
			SessionService: c.SessionManager,
		}),
		FileController: controllers.NewFileController(controllers.FileControllerDependencies{
			FileService: c.FileManager,
		}),
		TrashController: controllers.NewTrashController(controllers.TrashControllerDependencies{
			FileService: c.FileManager,
		}),
		FolderController: controllers.NewFolderController(controllers.FolderControllerDependencies{
			FolderService: c.FolderManager,
		}),
		BillingController: controllers.NewBillingController(controllers.BillingControllerDependencies{
			BillingService: c.BillingManager,
		}),
		ActivityController: controllers.NewActivityController(controllers.ActivityControllerDependencies{
			ActivityService: c.ActivityManager,
		}),
		PageController: controllers.NewPageController(controllers.PageControllerDependencies{
			FileService:    c.FileManager,
			FolderService:  c.FolderManager,
			SessionService: c.SessionManager,
			BillingService: c.BillingManager,
		}),
		AdminController: controllers.NewAdminController(controllers.AdminControllerDependencies{
			Store: c.Store,
		}),
	}
}

// Close tears down the realtime simulation; pending events drain and
// the activity consumer exits.
func (c *AppContainer) Close() error {
	if err := c.eventSource.Close(); err != nil {
		return err
	}
	c.ActivityManager.Wait()
	return nil
}
