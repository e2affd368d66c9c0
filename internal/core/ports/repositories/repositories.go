package repositories

// RepositoryFacade groups every collection owned by the workbench store.
type RepositoryFacade interface {
	TransactionRepositoryFacade
	ReconciliationRepositoryFacade
	FileUploadRepositoryFacade
	ActorRepositoryFacade
}

// StoreFacade is a RepositoryFacade that can also run atomic units of work.
type StoreFacade interface {
	RepositoryFacade
	TransactionManager
}
