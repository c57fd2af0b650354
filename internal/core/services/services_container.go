package services

import (
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cash_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// archiver may be nil, in which case raw uploads are not kept.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, archiver portsrepo.UploadArchiver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	importOptions := []ImportServiceOption{WithDeleteBatchSize(cfg.DeleteBatchSize)}
	if archiver != nil {
		importOptions = append(importOptions, WithUploadArchiver(archiver))
	}
	container.Import = NewImportService(repos.CashPositionRepo, importOptions...)

	container.CashSummary = NewCashSummaryService(repos.CashPositionRepo, repos.ReferenceDataRepo)
	container.ReferenceData = NewReferenceDataService(repos.ReferenceDataRepo)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, repos.RevokedTokenRepo)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
