package out

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/bnema/dbs3/internal/domain"
)

// DumpTool runs the engine's dump and load binaries.
// A non-zero exit is reported as *domain.ProcessError.
type DumpTool interface {
	Dump(ctx context.Context, conn domain.DatabaseConnection, outputPath string) error
	Load(ctx context.Context, conn domain.DatabaseConnection, inputPath string) error
}

// ToolInspector reports which dump binary version is installed and, for
// container runners, which engine the container image holds.
type ToolInspector interface {
	Version(ctx context.Context, conn domain.DatabaseConnection) (*semver.Version, error)
	// ContainerEngine returns ok=false when no container is involved or the
	// image names no known engine.
	ContainerEngine(ctx context.Context, conn domain.DatabaseConnection) (engine domain.DBEngine, ok bool, err error)
}
