// Package exec implements a scanner backend that delegates license detection to an
// external command, one process per package.
package exec

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Name is the registered name of the exec scanner.
const Name = "exec"

// Environment variables passed to the detection command.
const (
	EnvPackageID      = "SCOUT_PACKAGE_ID"
	EnvPackageType    = "SCOUT_PACKAGE_TYPE"
	EnvPackageName    = "SCOUT_PACKAGE_NAME"
	EnvPackageVersion = "SCOUT_PACKAGE_VERSION"
	EnvVcsType        = "SCOUT_VCS_TYPE"
	EnvVcsURL         = "SCOUT_VCS_URL"
	EnvVcsRevision    = "SCOUT_VCS_REVISION"
	EnvVcsPath        = "SCOUT_VCS_PATH"
	EnvSourceArtifact = "SCOUT_SOURCE_ARTIFACT_URL"
	EnvSourceDir      = "SCOUT_SOURCE_DIR"
	EnvOutputDir      = "SCOUT_OUTPUT_DIR"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner runs the configured detection command for every package.
type Scanner struct {
	opts      Options
	executor  ports.Executor
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new exec Scanner.
func New(
	opts Options,
	executor ports.Executor,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scanner {
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	return &Scanner{
		opts:      opts,
		executor:  executor,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// Name returns "exec".
func (s *Scanner) Name() string {
	return Name
}

// Statistics returns zero counters; the exec scanner keeps no result cache.
func (s *Scanner) Statistics() domain.AccessStatistics {
	return domain.AccessStatistics{}
}

// Scan runs the detection command once per package with bounded concurrency.
//
// A failing command does not abort the scan: the package receives a result that
// carries an error issue instead of findings. Only cancellation of ctx is returned
// as an error.
func (s *Scanner) Scan(
	ctx context.Context,
	packages []domain.Package,
	outputDir, downloadDir string,
) (map[domain.Identifier][]domain.ScanResult, error) {
	results := make(map[domain.Identifier][]domain.ScanResult, len(packages))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Parallelism)

	for _, pkg := range packages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			result := s.scanPackage(gctx, pkg, outputDir, downloadDir)

			mu.Lock()
			results[pkg.ID] = append(results[pkg.ID], result)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "scan cancelled")
	}

	return results, nil
}

func (s *Scanner) scanPackage(
	ctx context.Context,
	pkg domain.Package,
	outputDir, downloadDir string,
) domain.ScanResult {
	start := s.now()
	result := domain.ScanResult{
		Provenance: provenanceOf(pkg),
		Scanner: domain.ScannerDetails{
			Name:          Name,
			Version:       s.opts.Version,
			Configuration: strings.Join(s.opts.Command, " "),
		},
	}

	ctx, vertex := s.telemetry.Record(ctx, pkg.ID.String())

	sourceDir := filepath.Join(downloadDir, filepath.FromSlash(pkg.ID.ToPath()))
	err := s.run(ctx, pkg, sourceDir, outputDir, vertex, &result)
	if err != nil {
		s.logger.Warn("scan of " + pkg.ID.String() + " failed: " + err.Error())
		result.Summary.Issues = append(result.Summary.Issues, domain.Issue{
			Timestamp: s.now(),
			Source:    Name,
			Message:   err.Error(),
			Severity:  domain.SeverityError,
		})
	}

	result.Summary.StartTime = start
	result.Summary.EndTime = s.now()
	vertex.Complete(err)

	return result
}

func (s *Scanner) run(
	ctx context.Context,
	pkg domain.Package,
	sourceDir, outputDir string,
	vertex ports.Vertex,
	result *domain.ScanResult,
) error {
	if err := os.MkdirAll(sourceDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create source directory"), "path", sourceDir)
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	s.logger.Debug("Scanning " + pkg.ID.String() + " in " + sourceDir)

	var stdout bytes.Buffer
	cmd := domain.Command{
		Args: s.opts.Command,
		Dir:  sourceDir,
		Env:  commandEnv(pkg, sourceDir, outputDir),
	}
	if err := s.executor.Execute(ctx, cmd, &stdout, vertex.Stderr()); err != nil {
		return zerr.With(zerr.Wrap(err, "detection command failed"), "package", pkg.ID.String())
	}

	out, raw, err := decodeOutput(stdout.Bytes())
	if err != nil {
		return zerr.With(err, "package", pkg.ID.String())
	}
	result.RawResult = raw
	result.Summary.LicenseFindings = out.licenseFindings()
	result.Summary.CopyrightFindings = out.copyrightFindings()
	result.Summary.Issues = append(result.Summary.Issues, out.issues(s.now())...)

	code, count, err := s.hasher.ComputeVerificationCode(sourceDir)
	if err != nil {
		// Findings are still valid without a verification code.
		result.Summary.Issues = append(result.Summary.Issues, domain.Issue{
			Timestamp: s.now(),
			Source:    Name,
			Message:   "failed to compute verification code: " + err.Error(),
			Severity:  domain.SeverityWarning,
		})
		return nil
	}
	result.Summary.PackageVerificationCode = code
	result.Summary.FileCount = count

	if ids := result.Summary.LicenseIDs(); len(ids) > 0 {
		vertex.Log(domain.LogLevelInfo, "detected "+strings.Join(ids, ", "))
	}
	return nil
}

func provenanceOf(pkg domain.Package) domain.Provenance {
	switch {
	case !pkg.VcsProcessed.IsEmpty():
		vcs := pkg.VcsProcessed
		return domain.Provenance{VcsInfo: &vcs}
	case pkg.SourceArtifact.URL != "":
		artifact := pkg.SourceArtifact
		return domain.Provenance{SourceArtifact: &artifact}
	default:
		return domain.Provenance{}
	}
}

func commandEnv(pkg domain.Package, sourceDir, outputDir string) map[string]string {
	return map[string]string{
		EnvPackageID:      pkg.ID.String(),
		EnvPackageType:    pkg.ID.Type,
		EnvPackageName:    pkg.ID.Name,
		EnvPackageVersion: pkg.ID.Version,
		EnvVcsType:        pkg.VcsProcessed.Type,
		EnvVcsURL:         pkg.VcsProcessed.URL,
		EnvVcsRevision:    pkg.VcsProcessed.Revision,
		EnvVcsPath:        pkg.VcsProcessed.Path,
		EnvSourceArtifact: pkg.SourceArtifact.URL,
		EnvSourceDir:      sourceDir,
		EnvOutputDir:      outputDir,
	}
}

// output is the document the detection command prints to stdout.
type output struct {
	Licenses []struct {
		License   string `json:"license"`
		Path      string `json:"path"`
		StartLine int    `json:"startLine"`
		EndLine   int    `json:"endLine"`
	} `json:"licenses"`
	Copyrights []struct {
		Statement string `json:"statement"`
		Path      string `json:"path"`
		StartLine int    `json:"startLine"`
		EndLine   int    `json:"endLine"`
	} `json:"copyrights"`
	Issues []struct {
		Message  string `json:"message"`
		Severity string `json:"severity"`
	} `json:"issues"`
}

// decodeOutput parses the command output. Empty output means no findings.
func decodeOutput(data []byte) (output, any, error) {
	var out output
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil, nil
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return output{}, nil, zerr.Wrap(err, "failed to parse scanner output")
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return output{}, nil, zerr.Wrap(err, "failed to parse scanner output")
	}

	return out, raw, nil
}

func (o output) licenseFindings() []domain.LicenseFinding {
	findings := make([]domain.LicenseFinding, 0, len(o.Licenses))
	for _, l := range o.Licenses {
		if strings.TrimSpace(l.License) == "" {
			continue
		}
		findings = append(findings, domain.LicenseFinding{
			License:  strings.TrimSpace(l.License),
			Location: domain.TextLocation{Path: l.Path, StartLine: l.StartLine, EndLine: l.EndLine},
		})
	}
	return findings
}

func (o output) copyrightFindings() []domain.CopyrightFinding {
	findings := make([]domain.CopyrightFinding, 0, len(o.Copyrights))
	for _, c := range o.Copyrights {
		findings = append(findings, domain.CopyrightFinding{
			Statement: c.Statement,
			Location:  domain.TextLocation{Path: c.Path, StartLine: c.StartLine, EndLine: c.EndLine},
		})
	}
	return findings
}

func (o output) issues(now time.Time) []domain.Issue {
	issues := make([]domain.Issue, 0, len(o.Issues))
	for _, i := range o.Issues {
		severity := domain.Severity(strings.ToUpper(i.Severity))
		switch severity {
		case domain.SeverityHint, domain.SeverityWarning, domain.SeverityError:
		default:
			severity = domain.SeverityWarning
		}
		issues = append(issues, domain.Issue{
			Timestamp: now,
			Source:    Name,
			Message:   i.Message,
			Severity:  severity,
		})
	}
	return issues
}
