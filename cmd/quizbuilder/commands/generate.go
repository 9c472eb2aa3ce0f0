package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/quizbuilder/internal/config"
	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"git.home.luguber.info/inful/quizbuilder/internal/history"
	"git.home.luguber.info/inful/quizbuilder/internal/loader"
	"git.home.luguber.info/inful/quizbuilder/internal/logfields"
	"git.home.luguber.info/inful/quizbuilder/internal/manifest"
	"git.home.luguber.info/inful/quizbuilder/internal/watch"
	"github.com/google/uuid"
)

// GenerateCmd compiles a quiz corpus into its JSON manifest.
type GenerateCmd struct {
	Input  string `short:"i" help:"Path to a quiz directory" placeholder:"DIR"`
	Output string `short:"o" help:"Output directory for compiled manifests" placeholder:"DIR"`
	All    bool   `help:"Batch mode: treat each subdirectory of the input as a separate quiz"`
	Watch  bool   `short:"w" help:"Rebuild whenever quiz content changes (until interrupted)"`
}

func (g *GenerateCmd) Run(global *Global) error {
	input := firstNonEmpty(g.Input, global.Config.Input)
	output := firstNonEmpty(g.Output, global.Config.Output)

	build := func(ctx context.Context) error {
		if g.All {
			return buildAllQuizzes(ctx, input, output, global.Config)
		}
		return buildSingleQuiz(ctx, input, output, global.Config)
	}

	if !g.Watch {
		return build(context.Background())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// In watch mode a broken corpus is part of the edit loop: report and
	// keep watching instead of exiting.
	if err := build(ctx); err != nil {
		fmt.Fprintln(os.Stderr, qerrors.FormatError(err))
	}

	watcher, err := watch.New(input, func(ctx context.Context) {
		if err := build(ctx); err != nil {
			fmt.Fprintln(os.Stderr, qerrors.FormatError(err))
		}
	})
	if err != nil {
		return qerrors.Wrap(err, qerrors.CategoryInternal, qerrors.SeverityFatal, "start content watcher")
	}
	return watcher.Run(ctx)
}

// buildSingleQuiz compiles one quiz directory. The quiz name is the base
// name of the input directory.
func buildSingleQuiz(ctx context.Context, input, output string, cfg *config.Config) error {
	start := time.Now()
	buildID := uuid.NewString()
	quizName := filepath.Base(filepath.Clean(input))

	slog.Debug("Starting quiz build", logfields.BuildID(buildID), logfields.Quiz(quizName), logfields.Path(input))

	files, err := loader.LoadDir(input)
	if err != nil {
		return err
	}

	m := manifest.Build(files, quizName)
	outPath, err := m.Write(output)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	questions := loader.QuestionCount(files)

	recordBuild(ctx, cfg, history.Record{
		BuildID:      buildID,
		Quiz:         quizName,
		Topics:       len(files),
		Questions:    questions,
		ManifestPath: outPath,
		ManifestHash: fileSHA256(outPath),
		Duration:     duration,
		CreatedAt:    start.UTC(),
	})

	slog.Info("Compiled quiz",
		logfields.BuildID(buildID),
		logfields.Quiz(quizName),
		logfields.Topics(len(files)),
		logfields.Questions(questions),
		logfields.Path(outPath),
		logfields.DurationMS(float64(duration.Milliseconds())))

	fmt.Printf("Compiled %d questions in %d topics for quiz %q to %s\n",
		questions, len(files), quizName, outPath)

	return nil
}

// buildAllQuizzes treats each immediate subdirectory of input that contains
// yaml files as a separate quiz, written under its own output subdirectory.
func buildAllQuizzes(ctx context.Context, input, output string, cfg *config.Config) error {
	entries, err := os.ReadDir(input)
	if err != nil {
		return qerrors.NewFileSystemError(fmt.Sprintf("read %s", input), err)
	}

	built := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		quizDir := filepath.Join(input, entry.Name())
		if !containsYAML(quizDir) {
			slog.Debug("Skipping directory without yaml files", logfields.Path(quizDir))
			continue
		}
		if err := buildSingleQuiz(ctx, quizDir, filepath.Join(output, entry.Name()), cfg); err != nil {
			return err
		}
		built++
	}

	if built == 0 {
		return qerrors.NewValidationError(input, "no quiz directories found")
	}
	return nil
}

// containsYAML reports whether any .yaml file exists under dir.
func containsYAML(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && filepath.Ext(path) == ".yaml" {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// recordBuild appends a build record to the history store. Best-effort: a
// history failure is logged and never fails the build.
func recordBuild(ctx context.Context, cfg *config.Config, rec history.Record) {
	if cfg.History.Disabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("Failed to open build history", logfields.Error(err))
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Append(ctx, rec); err != nil {
		slog.Warn("Failed to record build history", logfields.Error(err))
	}
}

// fileSHA256 returns the lower-case hex sha256 of a file's content, or ""
// if the file cannot be read.
func fileSHA256(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
