package services

import (
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store portsrepo.StoreFacade, ingestor portssvc.BatchIngestor, opts ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Actor:          NewActorService(store, opts...),
		Transaction:    NewTransactionService(store, opts...),
		Reconciliation: NewReconciliationService(store, opts...),
		FileUpload: NewFileUploadService(store,
			WithBatchIngestor(ingestor),
			WithFileUploadBaseOptions(opts...),
		),
		Query:     NewQueryService(store, WithMaxPageSize(cfg.MaxPageSize)),
		Reporting: NewReportingService(store, opts...),
	}
}
