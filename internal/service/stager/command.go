package stager

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/jnistage/internal/config"
	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/install"
	"github.com/oshokin/jnistage/internal/logger"
	"github.com/oshokin/jnistage/internal/platform"
	"github.com/oshokin/jnistage/internal/repository/worktree"
	"github.com/oshokin/jnistage/internal/resolve"
)

// Options contains inputs for the stager entry point.
type Options struct {
	// ConfigPath is the path to the worktree settings (defaults to jnistage.yaml).
	ConfigPath string
	// Worktree overrides the worktree root from the settings when set.
	Worktree string
	// BuildConfig overrides the build configuration from the settings when set.
	BuildConfig string
}

// stager resolves and installs the libraries of one run.
// It is unexported; callers use Run, which loads and validates the settings.
type stager struct {
	// cfg is the validated worktree settings.
	cfg *config.Config
	// profile holds the host facts derived from the build configuration.
	profile platform.Profile
	// registry resolves project and package names.
	registry *worktree.Registry
}

// Summary reports what a run staged.
type Summary struct {
	// Destination is the directory the artifacts were installed into.
	Destination artifact.Destination
	// Artifacts lists the installed files, core libraries first.
	Artifacts []artifact.Artifact
}

// Run executes the staging workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, BinaryName)

	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}

	profile := platform.Host(cfg.BuildConfig)
	ctx = logger.WithKV(ctx, "build_config", cfg.BuildConfig)

	warnIfAlreadyRunning(ctx, profile)

	logger.Info(ctx, "Copying jni libraries as resources")

	if _, err = newStager(cfg, profile).Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Done")

	return nil
}

// loadSettings reads the settings file and applies command line overrides.
func loadSettings(opts *Options) (*config.Config, error) {
	if opts == nil {
		opts = new(Options)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.Worktree != "" {
		cfg.Worktree = opts.Worktree
	}

	if opts.BuildConfig != "" {
		cfg.BuildConfig = opts.BuildConfig
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newStager(cfg *config.Config, profile platform.Profile) *stager {
	return &stager{
		cfg:      cfg,
		profile:  profile,
		registry: worktree.NewRegistry(cfg, profile),
	}
}

// Run resolves the artifact set and installs it. Nothing is written to the
// destination unless every manifest entry resolved.
func (s *stager) Run(ctx context.Context) (*Summary, error) {
	logger.DebugKV(ctx, "Platform profile",
		"host_os", s.profile.HostOS,
		"cross_variant", s.profile.IsCrossVariant,
		"strategy", s.profile.Strategy.String(),
		"extensions", s.profile.LibraryExtensions)

	artifacts, err := s.resolveArtifacts(ctx)
	if err != nil {
		return nil, err
	}

	destination := DestinationFor(s.javaProjectPath(), s.profile)

	logger.InfoKV(ctx, "Installing libraries",
		"destination", destination.Directory,
		"count", len(artifacts),
		"strategy", s.profile.Strategy.String())

	if err = install.Install(ctx, destination, artifacts, s.profile); err != nil {
		return nil, fmt.Errorf("install libraries: %w", err)
	}

	for _, a := range artifacts {
		logger.InfoKV(ctx, "Staged library", "name", a.BaseName, "source", a.SourcePath)
	}

	return &Summary{
		Destination: destination,
		Artifacts:   artifacts,
	}, nil
}

// resolveArtifacts builds the artifact list and reports unbuilt units with a hint.
func (s *stager) resolveArtifacts(ctx context.Context) ([]artifact.Artifact, error) {
	boost, err := s.registry.Package(BoostPackage)
	if err != nil {
		return nil, fmt.Errorf("resolve toolchain package: %w", err)
	}

	artifacts, err := resolve.Build(ctx, s.profile, Manifest(s.profile), s.registry, boost, resolve.DefaultKeepFragments)
	if err == nil {
		return artifacts, nil
	}

	var notFound *resolve.ArtifactNotFoundError
	if errors.As(err, &notFound) {
		logger.ErrorKV(ctx, "Library not found",
			"unit", notFound.Unit,
			"library", notFound.Library,
			"directory", notFound.Directory)
		logger.Error(ctx, "Make sure "+JNIProject+" has been built")
	}

	return nil, fmt.Errorf("resolve libraries: %w", err)
}

// javaProjectPath returns the location of the Java project. It may be declared
// as a project name or given directly as a worktree path.
func (s *stager) javaProjectPath() string {
	if path, err := s.registry.ProjectPath(s.cfg.JavaProject); err == nil {
		return path
	}

	return s.registry.PathInWorktree(s.cfg.JavaProject)
}
