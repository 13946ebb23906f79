// Package health implements the doctor checks run before trusting a backup setup.
package health

import (
	"context"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/boundaries/out"
	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/internal/usecase/backup"
)

// minimumToolVersions are the oldest dump binaries whose flags we rely on.
var minimumToolVersions = map[domain.DBEngine]string{
	domain.DBEngineMySQL:    ">= 5.7",
	domain.DBEnginePostgres: ">= 12",
}

// Service implements the HealthService interface.
type Service struct {
	store     out.ObjectStore
	inspector out.ToolInspector
	history   out.HistoryStore
	config    domain.BackupConfig
	log       zerowrap.Logger
}

// NewService creates a new health service. history may be nil.
func NewService(
	store out.ObjectStore,
	inspector out.ToolInspector,
	history out.HistoryStore,
	config domain.BackupConfig,
	log zerowrap.Logger,
) *Service {
	return &Service{
		store:     store,
		inspector: inspector,
		history:   history,
		config:    config,
		log:       log,
	}
}

// CheckAll runs every check concurrently and returns them in a stable order.
func (s *Service) CheckAll(ctx context.Context) []domain.HealthCheck {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CheckAll",
	})
	log := zerowrap.FromCtx(ctx)

	checks := []func(context.Context) domain.HealthCheck{
		s.checkStorage,
		s.checkDumpTool,
		s.checkEngine,
		s.checkHistory,
		s.checkSafety,
	}
	results := make([]domain.HealthCheck, len(checks))

	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = check(ctx)
		}()
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
			log.Warn().Str("check", r.Name).Str("detail", r.Detail).Msg("health check failed")
		}
	}
	log.Debug().Int(zerowrap.FieldCount, len(results)).Int("failed", failed).Msg("all health checks complete")
	return results
}

func (s *Service) checkStorage(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "storage"}
	prefix := backup.BuildPrefix(s.config.Directory, s.config.Database.Name)

	objects, err := s.store.List(ctx, s.config.Bucket, prefix)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = true
	check.Detail = fmt.Sprintf("bucket %s reachable, %d backups under %s", s.config.Bucket, len(objects), prefix)
	return check
}

func (s *Service) checkDumpTool(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "dump tool"}

	version, err := s.inspector.Version(ctx, s.config.Database)
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	ok, detail, err := satisfiesMinimum(s.config.Database.Engine, version)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = ok
	check.Detail = detail
	return check
}

// checkEngine compares database.engine with the engine the container image
// holds. Only the docker runner has an image to compare.
func (s *Service) checkEngine(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "engine"}
	configured := s.config.Database.Engine
	if s.config.Database.Runner != domain.DBRunnerDocker {
		check.OK = true
		check.Detail = fmt.Sprintf("%s (local runner)", configured)
		return check
	}

	detected, ok, err := s.inspector.ContainerEngine(ctx, s.config.Database)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	if !ok {
		check.OK = true
		check.Detail = fmt.Sprintf("%s (not detectable from the image of %s)", configured, s.config.Database.Container)
		return check
	}
	if detected != configured {
		check.Detail = fmt.Sprintf("container %s runs %s but database.engine is %s", s.config.Database.Container, detected, configured)
		return check
	}
	check.OK = true
	check.Detail = fmt.Sprintf("%s matches the image of %s", configured, s.config.Database.Container)
	return check
}

func (s *Service) checkHistory(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "history"}
	if s.history == nil {
		check.OK = true
		check.Detail = "disabled"
		return check
	}

	runs, err := s.history.List(ctx, 1)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = true
	if len(runs) == 0 {
		check.Detail = "no runs recorded yet"
		return check
	}
	check.Detail = fmt.Sprintf("last %s of %s %s", runs[0].Kind, runs[0].Database, runs[0].Status)
	return check
}

func (s *Service) checkSafety(context.Context) domain.HealthCheck {
	decision := backup.Evaluate(s.config.Development, false)
	check := domain.HealthCheck{Name: "restore safety", OK: true}
	if decision.Allowed {
		check.Detail = "development environment, restores allowed"
	} else {
		check.Detail = "restores require --force"
	}
	return check
}

func satisfiesMinimum(engine domain.DBEngine, version *semver.Version) (bool, string, error) {
	minimum, ok := minimumToolVersions[engine]
	if !ok {
		return false, "", fmt.Errorf("unsupported database engine: %q", engine)
	}
	constraint, err := semver.NewConstraint(minimum)
	if err != nil {
		return false, "", err
	}
	if !constraint.Check(version) {
		return false, fmt.Sprintf("%s %s is too old, need %s", engine, version, minimum), nil
	}
	return true, fmt.Sprintf("%s tools %s", engine, version), nil
}
