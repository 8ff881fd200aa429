package signup

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupform/handler"
	"github.com/dmitrymomot/signupform/pkg/binder"
	"github.com/dmitrymomot/signupform/pkg/clientip"
	"github.com/dmitrymomot/signupform/pkg/i18n"
	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/ratelimiter"
)

// DefaultScriptURL is the datastar client bundle referenced by the page.
const DefaultScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Service serves the signup form.
type Service struct {
	cfg          Config
	translator   *i18n.Translator
	validator    *Validator
	gate         *Gate
	complete     CompletionFunc
	views        Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.RateLimiter
	scriptURL    string
}

// Option configures NewService.
type Option func(*Service)

// WithLogger sets the logger of the module and of the default completion.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCompletion replaces the default completion action (LogValues).
func WithCompletion(fn CompletionFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.complete = fn
		}
	}
}

// WithValidator replaces the validator built from Config.
func WithValidator(v *Validator) Option {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithViews overrides views; unset entries keep the defaults.
func WithViews(v Views) Option {
	return func(s *Service) { s.views = v.withDefaults() }
}

// WithErrorHandler replaces the handler that renders error pages and toasts.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithRateLimiter throttles the POST endpoints per client address.
func WithRateLimiter(rl ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = rl }
}

// WithScriptURL overrides the datastar bundle URL. An empty url omits the script.
func WithScriptURL(url string) Option {
	return func(s *Service) { s.scriptURL = url }
}

// NewService wires the module. The translator must contain the signup keys;
// see NewTranslator.
func NewService(cfg Config, tr *i18n.Translator, opts ...Option) (*Service, error) {
	if tr == nil {
		return nil, ErrNilTranslator
	}
	cfg = cfg.withDefaults()

	s := &Service{
		cfg:        cfg,
		translator: tr,
		views:      DefaultViews(),
		log:        logger.NewNop(),
		scriptURL:  DefaultScriptURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.validator == nil {
		s.validator = NewValidator(
			WithMinAge(cfg.MinAge),
			WithAddressLength(cfg.AddressMin, cfg.AddressMax),
		)
	}
	s.gate = NewGate(s.complete, s.log)
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   s.views.ErrorPage,
			ErrorToast:  s.views.ErrorToast,
			ToastTarget: "#" + ToastContainerID,
			Translate: func(r *http.Request, key string) string {
				return tr.T(i18n.GetLocale(r.Context()), "errors."+key)
			},
		})
	}
	return s, nil
}

// Handle returns the module router. Mount it at Config.BasePath.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(s.fail(handler.ErrNotFound))
	r.MethodNotAllowed(s.fail(handler.ErrMethodNotAllowed))

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Signals()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
		handler.WithDecorators[handler.Context, ValidateRequest](rateLimit[ValidateRequest](s.limiter, s.log)...),
	))

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](
			binder.Signals(), // datastar
			binder.Form(),    // plain HTML fallback
		),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
		handler.WithDecorators[handler.Context, SubmitRequest](rateLimit[SubmitRequest](s.limiter, s.log)...),
	))

	return r
}

func (s *Service) fail(err error) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))
}

// rateLimit consumes a token per request keyed by client address. Limiter
// failures let the request through.
func rateLimit[R any](rl ratelimiter.RateLimiter, log *slog.Logger) []handler.Decorator[handler.Context, R] {
	if rl == nil {
		return nil
	}
	return []handler.Decorator[handler.Context, R]{
		func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
			return func(ctx handler.Context, req R) handler.Response {
				key := clientip.FromContext(ctx)
				if key == "" {
					key = clientip.GetIP(ctx.Request())
				}

				res, err := rl.Allow(ctx, key)
				if err != nil {
					log.WarnContext(ctx, "rate limiter unavailable",
						logger.Component("signup"),
						logger.Error(err),
					)
					return next(ctx, req)
				}

				ratelimiter.SetHeaders(ctx.ResponseWriter().Header(), res)
				if !res.Allowed() {
					return handler.Error(handler.ErrTooManyRequests)
				}
				return next(ctx, req)
			}
		},
	}
}

// ValidateRequest carries the current signals of a live validation round.
type ValidateRequest struct {
	Values
	Touched map[string]bool `json:"touched" form:"-"`
}

// SubmitRequest is a submission via datastar signals or a urlencoded form.
type SubmitRequest struct {
	Values
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	state := NewFormState(s.validator)
	return handler.Templ(s.views.Page(s.pageParams(ctx, state, NoticeParams{})))
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	state := RestoreFormState(s.validator, Sanitize(req.Values), req.Touched)
	msgs := s.messages(ctx)

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendMultiple(s.feedbackPatches(state, msgs)...); err != nil {
			return err
		}
		return stream.SendSignals(map[string]any{"invalid": invalidSignals(state)})
	})
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	state := RestoreFormState(s.validator, Sanitize(req.Values), nil)
	result := s.gate.Submit(ctx, state)
	msgs := s.messages(ctx)

	if !handler.IsDataStar(ctx.Request()) {
		notice := NoticeParams{}
		status := http.StatusUnprocessableEntity
		if result.Submitted {
			notice.Message = msgs.T("signup.success")
			status = http.StatusOK
		}
		return handler.TemplWithStatus(status, s.views.Page(s.pageParams(ctx, state, notice)))
	}

	if !result.Submitted {
		return handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendMultiple(s.feedbackPatches(state, msgs)...); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{
				"touched": state.Touched(),
				"invalid": invalidSignals(state),
			})
		})
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(initialSignals(state)); err != nil {
			return err
		}
		return stream.SendMultiple(
			handler.Patch(s.views.Form(s.formParams(state, msgs))),
			handler.Patch(s.views.Notice(NoticeParams{Message: msgs.T("signup.success")})),
		)
	})
}

func (s *Service) messages(ctx handler.Context) messages {
	return newMessages(s.translator, i18n.GetLocale(ctx))
}

func (s *Service) feedbackPatches(state *FormState, msgs messages) []handler.TemplPatch {
	patches := make([]handler.TemplPatch, 0, len(Fields))
	for _, p := range s.fieldParams(state, msgs) {
		patches = append(patches, handler.Patch(s.views.Feedback(p)))
	}
	return patches
}

func (s *Service) fieldParams(state *FormState, msgs messages) []FieldParams {
	validateURL := strings.TrimSuffix(s.cfg.BasePath, "/") + "/validate"
	params := make([]FieldParams, 0, len(Fields))
	for _, f := range Fields {
		fs, _ := state.Field(f.Name)
		p := FieldParams{
			Name:         f.Name,
			InputType:    f.InputType,
			Autocomplete: f.Autocomplete,
			Label:        msgs.fieldText(f.Name, "label"),
			Placeholder:  msgs.fieldText(f.Name, "placeholder"),
			Hint:         msgs.fieldText(f.Name, "hint"),
			ValidateURL:  validateURL,
			Debounce:     s.cfg.ValidateDebounce,
		}
		if !f.Sensitive {
			p.Value = fs.Value
		}
		if ve, ok := state.VisibleError(f.Name); ok {
			p.Error = msgs.Error(ve)
		}
		params = append(params, p)
	}
	return params
}

func (s *Service) formParams(state *FormState, msgs messages) FormParams {
	return FormParams{
		Action:          s.cfg.BasePath,
		ValidateURL:     strings.TrimSuffix(s.cfg.BasePath, "/") + "/validate",
		SubmitLabel:     msgs.T("signup.submit"),
		SubmittingLabel: msgs.T("signup.submitting"),
		Signals:         mustJSON(initialSignals(state)),
		Fields:          s.fieldParams(state, msgs),
	}
}

func (s *Service) pageParams(ctx handler.Context, state *FormState, notice NoticeParams) PageParams {
	msgs := s.messages(ctx)
	return PageParams{
		Lang:      msgs.lang,
		Title:     msgs.T("signup.title"),
		Subtitle:  msgs.T("signup.subtitle"),
		ScriptURL: s.scriptURL,
		Languages: s.translator.SupportedLanguages(),
		Notice:    notice,
		Form:      s.formParams(state, msgs),
	}
}

// invalidSignals flags fields whose error is visible.
func invalidSignals(state *FormState) map[string]bool {
	invalid := make(map[string]bool, len(Fields))
	for _, f := range Fields {
		_, visible := state.VisibleError(f.Name)
		invalid[f.Name] = visible
	}
	return invalid
}

// initialSignals seeds the client store from state. Sensitive values are blanked.
func initialSignals(state *FormState) map[string]any {
	signals := make(map[string]any, len(Fields)+2)
	for _, f := range Fields {
		fs, _ := state.Field(f.Name)
		if f.Sensitive {
			signals[f.Name] = ""
			continue
		}
		signals[f.Name] = fs.Value
	}
	signals["touched"] = state.Touched()
	signals["invalid"] = invalidSignals(state)
	return signals
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
