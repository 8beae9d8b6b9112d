package app

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/keyscribe/keyscribe/internal/config"
	"github.com/keyscribe/keyscribe/internal/dispatch"
	"github.com/keyscribe/keyscribe/internal/input/key"
	"github.com/keyscribe/keyscribe/internal/mutate"
	"github.com/keyscribe/keyscribe/internal/surface"
	"github.com/keyscribe/keyscribe/internal/transform"
	"github.com/keyscribe/keyscribe/internal/transform/llm"
	"github.com/keyscribe/keyscribe/internal/transform/luaext"
	"github.com/keyscribe/keyscribe/internal/transform/style"
	"github.com/keyscribe/keyscribe/internal/transform/translate"
	"github.com/keyscribe/keyscribe/internal/wordsel"
)

// Application is one engine instance bound to a host surface. It owns
// the transformer registry, the dispatcher, and the optional settings
// watcher.
type Application struct {
	mu       sync.Mutex
	settings config.Settings
	path     string

	logger     *Logger
	notifier   Notifier
	registry   *transform.Registry
	dispatcher *dispatch.Dispatcher
	watcher    *config.Watcher
}

type options struct {
	path      string
	settings  *config.Settings
	notifier  Notifier
	logOutput io.Writer
	lua       map[string]string
}

// Option configures an Application.
type Option func(*options)

// WithSettingsFile loads settings from path and enables Watch.
func WithSettingsFile(path string) Option {
	return func(o *options) { o.path = path }
}

// WithSettings uses in-memory settings instead of a file.
func WithSettings(s config.Settings) Option {
	return func(o *options) { o.settings = &s }
}

// WithNotifier sets the user-notification sink.
func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithLogOutput overrides the log destination, for embedding hosts and
// tests.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithLuaTransform registers a user-supplied Lua transformer under
// name. Actions reference it through their transformer field.
func WithLuaTransform(name, source string) Option {
	return func(o *options) {
		if o.lua == nil {
			o.lua = make(map[string]string)
		}
		o.lua[name] = source
	}
}

// New builds an application around host. Settings come from
// WithSettings, WithSettingsFile, or the built-in defaults, in that
// order of preference.
func New(host surface.Host, opts ...Option) (*Application, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var s config.Settings
	switch {
	case o.settings != nil:
		s = *o.settings
		if err := config.Validate(s); err != nil {
			return nil, err
		}
	case o.path != "":
		loaded, err := config.Load(o.path)
		if err != nil {
			return nil, err
		}
		s = loaded
	default:
		s = config.Default()
	}

	output := o.logOutput
	if output == nil {
		output = LogWriter(s.Logging)
	}
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(s.Logging.Level),
		Output: output,
		Prefix: "keyscribe",
	})

	a := &Application{
		settings: s,
		path:     o.path,
		logger:   logger,
	}
	a.notifier = o.notifier
	if a.notifier == nil {
		a.notifier = logNotifier{log: logger}
	}

	registry, err := BuildRegistry(s, o.lua, logger)
	if err != nil {
		return nil, err
	}
	a.registry = registry

	pipeline := mutate.NewPipeline(mutate.WithSettleDelay(s.Mutation.SettleDelay()))
	a.dispatcher = dispatch.New(host, registry, pipeline,
		dispatch.WithLogger(logger.WithComponent("dispatch")),
		dispatch.WithNotifier(a.notifier),
		dispatch.WithStaticResult(a.staticResult),
	)
	if err := a.dispatcher.Reconfigure(actionSpecs(s.Actions), s.SelectionModifier); err != nil {
		return nil, err
	}

	logger.Info("engine ready: %d actions, transformers [%s]",
		len(s.Actions), strings.Join(registry.Names(), " "))
	return a, nil
}

// BuildRegistry registers the built-in transformers plus any Lua
// extensions. Everything deterministic sits behind the result cache;
// the model rewriter is registered only when an API key is configured.
func BuildRegistry(s config.Settings, lua map[string]string, log *Logger) (*transform.Registry, error) {
	reg := transform.NewRegistry()
	ttl := s.Cache.TTL()

	cached := func(t transform.Transformer) transform.Transformer {
		if ttl <= 0 {
			return t
		}
		return transform.NewCached(t, ttl)
	}

	if err := reg.Register(cached(translate.Builtin())); err != nil {
		return nil, err
	}
	if err := reg.Register(cached(style.New())); err != nil {
		return nil, err
	}

	if s.AI.APIKey != "" {
		client, err := llm.NewClient(llm.Settings{
			Provider:    s.AI.Provider,
			Model:       s.AI.Model,
			APIKey:      s.AI.APIKey,
			MaxTokens:   s.AI.MaxTokens,
			Temperature: s.AI.Temperature,
			Timeout:     s.AI.Timeout(),
		})
		if err != nil {
			return nil, err
		}
		if err := reg.Register(cached(llm.New(client, s.AI.Timeout()))); err != nil {
			return nil, err
		}
	} else {
		log.Info("no API key configured, llm actions disabled")
	}

	for name, source := range lua {
		if err := reg.Register(luaext.New(name, source, luaext.DefaultBudget)); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// actionSpecs converts settings entries into dispatch specs.
func actionSpecs(actions []config.ActionSetting) []dispatch.Spec {
	specs := make([]dispatch.Spec, len(actions))
	for i, a := range actions {
		specs[i] = dispatch.Spec{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Shortcut:    a.Shortcut,
			Kind:        dispatch.Kind(a.Kind),
			Transformer: a.Transformer,
			Args:        a.Args,
		}
	}
	return specs
}

// Watch starts live settings reload. It is a no-op when the
// application was not built from a settings file.
func (a *Application) Watch() error {
	if a.path == "" {
		return nil
	}

	w, err := config.NewWatcher(a.path, config.DefaultDebounce)
	if err != nil {
		return err
	}
	w.OnChange = func(s config.Settings) {
		if err := a.Apply(s); err != nil {
			a.logger.Error("settings reload rejected: %v", err)
			a.notifier.Notify(fmt.Sprintf("Settings not applied: %v", err))
		}
	}
	w.OnError = func(err error) {
		a.logger.Error("settings reload rejected: %v", err)
		a.notifier.Notify(fmt.Sprintf("Settings not applied: %v", err))
	}
	if err := w.Start(); err != nil {
		return err
	}
	a.watcher = w
	a.logger.Info("watching %s", a.path)
	return nil
}

// Apply installs new settings. The shortcut table, selection modifier
// and log level take effect immediately; provider, cache and log-file
// changes require a restart. A rejected table leaves everything as it
// was.
func (a *Application) Apply(s config.Settings) error {
	if err := a.dispatcher.Reconfigure(actionSpecs(s.Actions), s.SelectionModifier); err != nil {
		return err
	}
	a.logger.SetLevel(ParseLogLevel(s.Logging.Level))

	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()

	a.logger.Info("settings applied: %d actions", len(s.Actions))
	return nil
}

// Close stops the watcher and waits for any in-flight operation.
func (a *Application) Close() error {
	var err error
	if a.watcher != nil {
		err = a.watcher.Stop()
	}
	a.dispatcher.Wait()
	return err
}

// HandleKeyDown feeds a key-down event from the host. It returns true
// when the event was consumed and default handling must be suppressed.
func (a *Application) HandleKeyDown(ev key.Event) bool {
	return a.dispatcher.HandleKeyDown(ev)
}

// HandleKeyUp feeds a key-up event from the host.
func (a *Application) HandleKeyUp(ev key.Event) {
	a.dispatcher.HandleKeyUp(ev)
}

// Blur signals that the host document lost focus.
func (a *Application) Blur() {
	a.dispatcher.Blur()
}

// ExtendWordSelection drives the word selector directly, for hosts
// that bind their own selection gestures.
func (a *Application) ExtendWordSelection(target surface.Field, m wordsel.Motion) error {
	return wordsel.Extend(target, m)
}

// Dispatcher exposes the dispatcher for diagnostics and tests.
func (a *Application) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}

// Settings returns the active settings.
func (a *Application) Settings() config.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// staticResult handles transform output for read-only page selections:
// the result goes to the OS clipboard.
func (a *Application) staticResult(action dispatch.Action, text string) {
	if err := clipboard.WriteAll(text); err != nil {
		a.logger.Error("clipboard write failed: %v", err)
		a.notifier.Notify(fmt.Sprintf("%s: could not copy result", action.Name()))
		return
	}
	a.notifier.Notify(fmt.Sprintf("%s: result copied to clipboard", action.Name()))
}
