// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、ignore 规则、语言识别、任务分发与结果归并，
// 逐行分类交给 classifier。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"gotokei/internal/classifier"
	"gotokei/internal/config"
	"gotokei/internal/languages"
	"gotokei/internal/logger"
	"gotokei/internal/model"
)

// ScanError 记录单个文件的失败，不会中断整次扫描。
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Result 是一次扫描的产物。
type Result struct {
	Languages *model.Languages
	Errors    []ScanError
}

// Service 是扫描服务对象，可重复调用 Scan。
type Service struct {
	cfg        config.Config
	workers    int
	logger     *slog.Logger
	metrics    *Metrics
	classifier *classifier.Classifier
	types      map[languages.LanguageType]struct{}
}

// Option 配置 Service。
type Option func(*Service)

// WithWorkers 设置并发 worker 数，<=0 时使用 CPU 核数。
func WithWorkers(workers int) Option {
	return func(s *Service) {
		s.workers = workers
	}
}

// WithLogger 设置日志器。
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// WithRegisterer 把扫描指标注册到 reg。
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.metrics = NewMetrics(reg)
	}
}

// WithClassifier 替换默认分类器。
func WithClassifier(c *classifier.Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// NewService 创建扫描服务。cfg 中的 types 无法解析时返回错误。
func NewService(cfg config.Config, opts ...Option) (*Service, error) {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.workers <= 0 {
		s.workers = runtime.NumCPU()
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.classifier == nil {
		s.classifier = classifier.New(classifier.WithDocStringsAsComments(cfg.DocStringsAsComments()))
	}

	types, err := cfg.LanguageTypes()
	if err != nil {
		return nil, fmt.Errorf("resolve language types: %w", err)
	}
	if len(types) > 0 {
		s.types = make(map[languages.LanguageType]struct{}, len(types))
		for _, t := range types {
			s.types[t] = struct{}{}
		}
	}
	return s, nil
}

// scanTask 表示一个待分析文件任务。
type scanTask struct {
	absolutePath string
	displayPath  string
	// explicit 表示用户直接给出的文件路径，无法识别时记为错误而不是静默跳过。
	explicit bool
}

// workerState 是单个 worker 独占的累加器，扫描结束后统一归并。
type workerState struct {
	languages *model.Languages
	errors    []ScanError
}

// Collect 实现 model.Collector。单文件错误只记录日志，不作为返回值。
func (s *Service) Collect(ctx context.Context, paths []string, excluded []string) (*model.Languages, error) {
	result, err := s.Scan(ctx, paths, excluded)
	for _, scanErr := range result.Errors {
		s.logger.Warn("file skipped", slog.String("path", scanErr.Path), slog.String("error", scanErr.Error))
	}
	return result.Languages, err
}

// Scan 扫描若干根路径（目录或文件）。
//
// 行为说明：
// - 每个 worker 折叠到自己的 model.Languages，结束后按 worker 顺序 Merge，结果与 worker 数无关
// - 单个文件失败记为 ScanError 并继续
// - ctx 取消时停止遍历，返回已归并的部分结果与 ctx.Err()
func (s *Service) Scan(ctx context.Context, paths []string, excluded []string) (Result, error) {
	result := Result{
		Languages: model.NewLanguages(),
		Errors:    make([]ScanError, 0),
	}

	exclude, err := newExcluder(excluded)
	if err != nil {
		return result, err
	}

	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			roots = append(roots, trimmed)
		}
	}
	if len(roots) == 0 {
		return result, errors.New("scan path is empty")
	}

	started := time.Now()
	defer func() {
		s.metrics.ScanDuration.Observe(time.Since(started).Seconds())
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	tasks := make(chan scanTask, s.workers*4)

	var walkErrors []ScanError
	group.Go(func() error {
		defer close(tasks)
		for _, root := range roots {
			errs, err := s.walkRoot(groupCtx, root, exclude, tasks)
			walkErrors = append(walkErrors, errs...)
			if err != nil {
				return err
			}
		}
		return nil
	})

	states := make([]*workerState, s.workers)
	for i := range states {
		state := &workerState{languages: model.NewLanguages()}
		states[i] = state
		group.Go(func() error {
			s.runWorker(groupCtx, tasks, state)
			return nil
		})
	}

	waitErr := group.Wait()

	for _, state := range states {
		result.Languages.Merge(state.languages)
		result.Errors = append(result.Errors, state.errors...)
	}
	result.Errors = append(result.Errors, walkErrors...)
	slices.SortFunc(result.Errors, func(a, b ScanError) int {
		return strings.Compare(a.Path, b.Path)
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if waitErr != nil {
		return result, waitErr
	}
	return result, nil
}

// walkRoot 遍历单个根路径并推送任务。返回的 error 只表示需要终止整次扫描（取消）。
func (s *Service) walkRoot(ctx context.Context, root string, exclude excluder, tasks chan<- scanTask) ([]ScanError, error) {
	var scanErrors []ScanError
	record := func(path string, err error) {
		s.metrics.ScanErrors.Inc()
		s.logger.Debug("walk error", slog.String("path", path), slog.Any("error", err))
		scanErrors = append(scanErrors, ScanError{Path: path, Error: err.Error()})
	}

	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		record(root, fmt.Errorf("resolve absolute path: %w", err))
		return scanErrors, nil
	}

	info, err := os.Stat(absoluteRoot)
	if err != nil {
		record(root, fmt.Errorf("stat path: %w", err))
		return scanErrors, nil
	}

	if !info.IsDir() {
		task := scanTask{absolutePath: absoluteRoot, displayPath: filepath.ToSlash(root), explicit: true}
		return scanErrors, send(ctx, tasks, task)
	}

	parents, err := parentIgnores(absoluteRoot, s.cfg)
	if err != nil {
		record(root, err)
	}
	ignoreSets := map[string]ignoreSet{filepath.Dir(absoluteRoot): parents}

	walkErr := filepath.WalkDir(absoluteRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		relativePath, relErr := filepath.Rel(absoluteRoot, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)
		displayPath := filepath.ToSlash(filepath.Join(root, relativePath))

		if walkErr != nil {
			record(displayPath, walkErr)
			if entry != nil && entry.IsDir() && path != absoluteRoot {
				return fs.SkipDir
			}
			return nil
		}

		isDir := entry.IsDir()
		if reason, skip := s.skipReason(path, absoluteRoot, relativePath, entry, exclude, ignoreSets); skip {
			if isDir {
				s.logger.Debug("directory skipped", slog.String("path", displayPath), slog.String("reason", reason))
				return fs.SkipDir
			}
			s.metrics.skipped(reason)
			return nil
		}

		if isDir {
			set, err := ignoreSets[filepath.Dir(path)].with(path, s.cfg)
			if err != nil {
				record(displayPath, err)
			}
			ignoreSets[path] = set
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		return send(ctx, tasks, scanTask{absolutePath: path, displayPath: displayPath})
	})

	if walkErr != nil && ctx.Err() != nil {
		return scanErrors, ctx.Err()
	}
	if walkErr != nil {
		record(root, walkErr)
	}
	return scanErrors, nil
}

// skipReason 判断遍历到的条目是否需要跳过；扫描根本身永远不跳过。
func (s *Service) skipReason(path, root, relativePath string, entry fs.DirEntry, exclude excluder, ignoreSets map[string]ignoreSet) (string, bool) {
	if path == root {
		return "", false
	}

	name := entry.Name()
	if entry.IsDir() {
		if _, ok := vcsDirs[name]; ok {
			return skipIgnored, true
		}
	}
	if !s.cfg.IsHidden() && strings.HasPrefix(name, ".") {
		return skipHidden, true
	}
	if exclude.excluded(relativePath) {
		return skipExcluded, true
	}
	if ignoreSets[filepath.Dir(path)].ignored(path, entry.IsDir()) {
		return skipIgnored, true
	}
	return "", false
}

func send(ctx context.Context, tasks chan<- scanTask, task scanTask) error {
	select {
	case tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runWorker 执行真实的文件读取与分类；取消后只排空队列不再处理。
func (s *Service) runWorker(ctx context.Context, tasks <-chan scanTask, state *workerState) {
	for task := range tasks {
		if ctx.Err() != nil {
			continue
		}
		if err := s.processFile(task, state); err != nil {
			s.metrics.ScanErrors.Inc()
			s.logger.Warn("scan file failed", slog.String("path", task.displayPath), slog.Any("error", err))
			state.errors = append(state.errors, ScanError{Path: task.displayPath, Error: err.Error()})
		}
	}
}

// processFile 先读取文件头判断二进制与语言，确认可统计后才读取剩余内容。
func (s *Service) processFile(task scanTask, state *workerState) error {
	file, err := os.Open(task.absolutePath)
	if err != nil {
		return err
	}
	defer file.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read file: %w", err)
	}
	head = head[:n]

	if isBinary(head) {
		s.metrics.skipped(skipBinary)
		return nil
	}

	lang, ok := detectLanguage(task.absolutePath, head)
	if !ok {
		s.metrics.skipped(skipUnknown)
		if task.explicit {
			return fmt.Errorf("unsupported file type: %s", filepath.Base(task.absolutePath))
		}
		s.logger.Debug("unknown language", slog.String("path", task.displayPath))
		return nil
	}
	if s.types != nil {
		if _, wanted := s.types[lang]; !wanted {
			s.metrics.skipped(skipFiltered)
			return nil
		}
	}

	rest, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	content := append(head, rest...)
	s.metrics.BytesRead.Add(float64(len(content)))

	classified := s.classifier.Classify(lang, content)
	report := model.NewReport(task.displayPath)
	report.Stats = classified.Stats
	report.Inaccurate = classified.Inaccurate
	if classified.Inaccurate {
		s.logger.Debug("inaccurate classification", slog.String("path", task.displayPath), slog.String("language", lang.Name()))
	}

	state.languages.AddReport(lang, report)
	s.metrics.FilesCounted.WithLabelValues(lang.Name()).Inc()
	return nil
}
