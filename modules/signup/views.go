package signup

//go:generate templ generate -f views.templ

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signupform/handler"
)

// Element ids targeted by datastar patches.
const (
	FormID           = "signup-form"
	NoticeID         = "signup-notice"
	ToastContainerID = "toast-container"
)

// FieldGroupID returns the id of the wrapper of field.
func FieldGroupID(field string) string { return "field-" + field }

// FeedbackID returns the id of the error element of field.
func FeedbackID(field string) string { return field + "-error" }

// InvalidClass marks a touched field that fails validation.
const InvalidClass = "is-invalid"

// FieldParams describes one field as rendered by FieldGroupView.
type FieldParams struct {
	Name         string
	InputType    string
	Autocomplete string
	Label        string
	Placeholder  string
	Hint         string
	Value        string
	// Error is the visible message; empty when the field is valid or untouched.
	Error       string
	ValidateURL string
	Debounce    string
}

// Invalid reports whether the field shows an error.
func (p FieldParams) Invalid() bool { return p.Error != "" }

// controlAttrs are the attributes shared by input and textarea controls.
func (p FieldParams) controlAttrs() templ.OrderedAttributes {
	class := "form-control"
	if p.Invalid() {
		class += " " + InvalidClass
	}
	validate := postAction(p.ValidateURL)

	attrs := templ.OrderedAttributes{
		{Key: "id", Value: p.Name},
		{Key: "name", Value: p.Name},
		{Key: "class", Value: class},
	}
	if p.Autocomplete != "" {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: "autocomplete", Value: p.Autocomplete})
	}
	if p.Placeholder != "" {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: "placeholder", Value: p.Placeholder})
	}
	return append(attrs,
		templ.KeyValue[string, any]{Key: "aria-describedby", Value: FeedbackID(p.Name)},
		templ.KeyValue[string, any]{Key: "aria-invalid", Value: strconv.FormatBool(p.Invalid())},
		templ.KeyValue[string, any]{Key: "required", Value: true},
		templ.KeyValue[string, any]{Key: "data-bind", Value: p.Name},
		templ.KeyValue[string, any]{Key: "data-class:" + InvalidClass, Value: "$invalid." + p.Name},
		templ.KeyValue[string, any]{Key: "data-on:blur", Value: "$touched." + p.Name + " = true; " + validate},
		templ.KeyValue[string, any]{Key: "data-on:input__debounce." + p.Debounce, Value: validate},
	)
}

// postAction is the datastar expression posting the signals to url.
func postAction(url string) string { return "@post('" + url + "')" }

// FormParams describes the whole form.
type FormParams struct {
	Action          string
	ValidateURL     string
	SubmitLabel     string
	SubmittingLabel string
	// Signals is the JSON of the initial datastar signals.
	Signals string
	Fields  []FieldParams
}

// NoticeParams carries the success message shown above the form.
type NoticeParams struct {
	Message string
}

// PageParams describes the full signup page.
type PageParams struct {
	Lang      string
	Title     string
	Subtitle  string
	ScriptURL string
	// Languages are offered as ?lang= links.
	Languages []string
	Notice    NoticeParams
	Form      FormParams
}

// Views renders the module. Any nil entry falls back to the default view.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	FieldGroup func(FieldParams) templ.Component
	Feedback   func(FieldParams) templ.Component
	Notice     func(NoticeParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews returns the built-in templ views wired to each other.
func DefaultViews() Views {
	v := Views{
		Feedback:   FeedbackView,
		Notice:     NoticeView,
		ErrorPage:  ErrorPageView,
		ErrorToast: ErrorToastView,
	}
	v.FieldGroup = func(p FieldParams) templ.Component { return FieldGroupView(p, v.Feedback) }
	v.Form = func(p FormParams) templ.Component { return FormView(p, v.FieldGroup) }
	v.Page = func(p PageParams) templ.Component { return PageView(p, v.Notice, v.Form) }
	return v
}

func (v Views) withDefaults() Views {
	d := DefaultViews()
	if v.Feedback == nil {
		v.Feedback = d.Feedback
	}
	if v.Notice == nil {
		v.Notice = d.Notice
	}
	if v.ErrorPage == nil {
		v.ErrorPage = d.ErrorPage
	}
	if v.ErrorToast == nil {
		v.ErrorToast = d.ErrorToast
	}
	if v.FieldGroup == nil {
		feedback := v.Feedback
		v.FieldGroup = func(p FieldParams) templ.Component { return FieldGroupView(p, feedback) }
	}
	if v.Form == nil {
		group := v.FieldGroup
		v.Form = func(p FormParams) templ.Component { return FormView(p, group) }
	}
	if v.Page == nil {
		notice, form := v.Notice, v.Form
		v.Page = func(p PageParams) templ.Component { return PageView(p, notice, form) }
	}
	return v
}
