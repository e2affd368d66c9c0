package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration time.
type ServiceContainer struct {
	Actor          ActorSvcFacade
	Transaction    TransactionSvcFacade
	Reconciliation ReconciliationSvcFacade
	FileUpload     FileUploadSvcFacade
	Query          FileUploadQuerySvc
	Reporting      ReportingService
}
